// SPDX-License-Identifier: GPL-2.0-or-later

package voice

import (
	"io"
	"log"
	"strings"
	"sync/atomic"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
)

// clip is a fully decoded asset shared by all voices playing it.
type clip struct {
	name  string
	ready atomic.Bool
	buf   *beep.Buffer
}

func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	}
	return nil, beep.Format{}, errors.Errorf("unsupported audio format %q", ext)
}

// load decodes the whole asset into memory. It runs on its own goroutine,
// ready is set last.
func (c *clip) load(rc io.ReadCloser, ext string) {
	defer rc.Close()
	s, format, err := decode(rc, ext)
	if err != nil {
		log.Print(errors.Wrapf(err, "decode %s", c.name))
		return
	}
	defer s.Close()
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		log.Print(errors.Wrapf(err, "decode %s", c.name))
		return
	}
	c.buf = buf
	c.ready.Store(true)
}
