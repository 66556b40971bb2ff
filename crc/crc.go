// SPDX-License-Identifier: GPL-2.0-or-later

// Package crc implements the 16 bit CRC-CCITT (XMODEM start 0xffff) used
// to fingerprint pack directories.
package crc

const (
	ccittFalse = 0x1021
	initial    = 0xffff
)

type table [256]uint16

var ccittFalseTable = makeTable(ccittFalse)

func makeTable(poly uint16) *table {
	t := &table{}
	for i := uint16(0); i < 256; i++ {
		c := i << 8
		for j := 0; j < 8; j++ {
			if c&0x8000 != 0 {
				c = (c << 1) ^ poly
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return t
}

func update(c uint16, p []byte) uint16 {
	for _, v := range p {
		c = ccittFalseTable[byte(c>>8)^v] ^ (c << 8)
	}
	return c
}

// Update returns the checksum of p.
func Update(p []byte) uint16 {
	return update(initial, p)
}

// Hash accumulates a checksum over everything written to it.
type Hash struct {
	sum     uint16
	started bool
}

func (h *Hash) Write(p []byte) (int, error) {
	if !h.started {
		h.sum = initial
		h.started = true
	}
	h.sum = update(h.sum, p)
	return len(p), nil
}

func (h *Hash) Sum16() uint16 {
	if !h.started {
		return initial
	}
	return h.sum
}
