// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand is a small reproducible generator. Values are a hash of a
// running index and the seed, so two generators with the same seed walk
// the same sequence.
package rand

const (
	bitNoise1 = 0xB5297A4D
	bitNoise2 = 0x68E31DA4
	bitNoise3 = 0x1B56C4E9
)

type Generator struct {
	idx  uint32
	seed uint32
}

func New(seed uint32) Generator {
	return Generator{seed: seed}
}

// squirrel noise
func hash(p, seed uint32) uint32 {
	m := p * bitNoise1
	m += seed
	m ^= m >> 8
	m *= bitNoise2
	m ^= m << 8
	m *= bitNoise3
	m ^= m >> 8
	return m
}

func (g *Generator) next() uint32 {
	g.idx++
	return hash(g.idx, g.seed)
}

// NewSeed restarts the sequence of seed s.
func (g *Generator) NewSeed(s uint32) {
	g.seed = s
	g.idx = 0
}

func (g *Generator) Uint32n(n uint32) uint32 {
	return g.next() % n
}

func (g *Generator) Intn(n int) int {
	return int(g.Uint32n(uint32(n)))
}

// Float32 returns a value in [0, 1).
func (g *Generator) Float32() float32 {
	return float32(g.Uint32n(1<<24)) / (1 << 24)
}

// Chance reports true with probability n/outOf.
func (g *Generator) Chance(n, outOf uint32) bool {
	return g.Uint32n(outOf) < n
}
