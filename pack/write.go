// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// File is one entry to be written into a pack.
type File struct {
	Name string
	Data []byte
}

// Write stores files as a pack: header, data, directory.
func Write(w io.Writer, files []File) error {
	offset := int32(binary.Size(header{}))
	entries := make([]entry, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if len(f.Name) >= nameLength {
			return errors.Errorf("pack name too long: %s", f.Name)
		}
		if seen[f.Name] {
			return errors.Wrap(ErrDuplicate, f.Name)
		}
		seen[f.Name] = true
		e := entry{
			Offset: offset,
			Size:   int32(len(f.Data)),
		}
		copy(e.Name[:], f.Name)
		entries = append(entries, e)
		offset += e.Size
	}
	h := header{
		Offset: offset,
		Size:   int32(len(entries) * entrySize),
	}
	copy(h.ID[:], "PACK")
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "pack header")
	}
	for _, f := range files {
		if _, err := w.Write(f.Data); err != nil {
			return errors.Wrap(err, f.Name)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return errors.Wrap(err, "pack directory")
	}
	return nil
}
