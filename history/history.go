// SPDX-License-Identifier: GPL-2.0-or-later

package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	// add a max size to prevent the file from growing indefinitely
	maxHistory = 32
	filename   = "history.txt"
)

// History holds the lines typed into the console. The position starts
// past the newest line.
type History struct {
	txt []string
	idx int
}

func (h *History) String() string {
	if len(h.txt) == h.idx {
		return ""
	}
	return h.txt[h.idx]
}

func (h *History) Up() {
	if h.idx > 0 {
		h.idx--
	}
}

func (h *History) Down() {
	if h.idx < len(h.txt) {
		h.idx++
	}
}

func (h *History) Add(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	h.txt = append(h.txt, s)
	h.idx = len(h.txt)
}

func (h *History) Len() int {
	return len(h.txt)
}

// entries is the field number of the repeated string in the saved
// History message.
const entries protowire.Number = 1

// Load reads the history saved in dir. A missing file is no error.
func (h *History) Load(dir string) error {
	in, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read history")
	}
	txt, err := decode(in)
	if err != nil {
		return errors.Wrap(err, "failed to decode history")
	}
	h.txt = txt
	h.idx = len(h.txt)
	return nil
}

func decode(b []byte) ([]string, error) {
	var txt []string
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if num != entries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		l, n := protowire.ConsumeString(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		txt = append(txt, l)
	}
	return txt, nil
}

func encode(txt []string) []byte {
	var b []byte
	for _, l := range txt {
		b = protowire.AppendTag(b, entries, protowire.BytesType)
		b = protowire.AppendString(b, l)
	}
	return b
}

// Save writes the newest lines to dir.
func (h *History) Save(dir string) error {
	first := max(len(h.txt)-maxHistory, 0)
	out := encode(h.txt[first:])
	if err := os.WriteFile(filepath.Join(dir, filename), out, 0o660); err != nil {
		return errors.Wrap(err, "failed to write history file")
	}
	return nil
}
