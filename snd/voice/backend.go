// SPDX-License-Identifier: GPL-2.0-or-later

package voice

import (
	"io"
	"sync"

	"emittance/snd"
	"emittance/snd/speaker"

	"github.com/pkg/errors"
)

// OpenFunc resolves an asset reference like "bgs/Drips" and returns its
// data together with the file extension that selects the decoder.
type OpenFunc func(name string) (io.ReadCloser, string, error)

// Backend creates beep voices playing on one output. Assets are decoded
// once in the background and shared by every voice playing them.
type Backend struct {
	out  *speaker.Output
	open OpenFunc

	mu    sync.Mutex
	clips map[string]*clip
}

func NewBackend(out *speaker.Output, open OpenFunc) *Backend {
	return &Backend{
		out:   out,
		open:  open,
		clips: make(map[string]*clip),
	}
}

// NewVoice fails only if the asset does not exist. Decoding happens in the
// background, the voice reports ready once it is done.
func (b *Backend) NewVoice(name string) (snd.Voice, error) {
	c, err := b.clip(name)
	if err != nil {
		return nil, err
	}
	return newVoice(b.out, c), nil
}

func (b *Backend) clip(name string) (*clip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.clips[name]; ok {
		return c, nil
	}
	rc, ext, err := b.open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	c := &clip{name: name}
	b.clips[name] = c
	go c.load(rc, ext)
	return c, nil
}

// Purge forgets all decoded assets. Playing voices keep their data.
// The engine calls it on every map teardown.
func (b *Backend) Purge() {
	b.mu.Lock()
	clear(b.clips)
	b.mu.Unlock()
}
