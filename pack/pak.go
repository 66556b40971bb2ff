// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"emittance/crc"

	"github.com/pkg/errors"
)

const (
	entrySize  = 64
	nameLength = 56
)

var (
	ErrNotPack   = errors.New("not a pack")
	ErrDuplicate = errors.New("files in pack are not unique")
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [nameLength]byte
	Offset int32
	Size   int32
}

// Pack is a read only archive of named files.
type Pack struct {
	f     *os.File
	files map[string]qfile
	name  string
	crc   uint16
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a reader of the file or an error wrapping os.ErrNotExist.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "%s: %s", p.name, name)
	}
	return io.NewSectionReader(p.f, q.offset, q.size), nil
}

func (p *Pack) Has(name string) bool {
	_, ok := p.files[name]
	return ok
}

// Names returns all file names sorted.
func (p *Pack) Names() []string {
	r := make([]string, 0, len(p.files))
	for n := range p.files {
		r = append(r, n)
	}
	sort.Strings(r)
	return r
}

func (p *Pack) String() string {
	return p.name
}

// Checksum is the CRC of the pack directory. Two packs with the same
// layout have the same checksum.
func (p *Pack) Checksum() uint16 {
	return p.crc
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "pack header")
	}
	if !bytes.Equal([]byte("PACK"), h.ID[:]) {
		return ErrNotPack
	}
	if _, err := p.f.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return errors.Wrap(err, "pack directory")
	}
	n := h.Size / entrySize
	var sum crc.Hash
	dir := io.TeeReader(p.f, &sum)
	p.files = make(map[string]qfile, n)
	for i := int32(0); i < n; i++ {
		var e entry
		if err := binary.Read(dir, binary.LittleEndian, &e); err != nil {
			return errors.Wrap(err, "pack entry")
		}
		l := bytes.IndexByte(e.Name[:], 0)
		if l < 0 {
			l = len(e.Name)
		}
		name := string(e.Name[:l])
		if _, ok := p.files[name]; ok {
			return errors.Wrap(ErrDuplicate, name)
		}
		p.files[name] = qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	p.crc = sum.Sum16()
	return nil
}

func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if err := p.init(); err != nil {
		p.Close()
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}
