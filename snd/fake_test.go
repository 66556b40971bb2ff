// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"time"

	"emittance/math/vec"

	"github.com/pkg/errors"
)

type fakeVoice struct {
	file     string
	volume   float32
	pitch    float32
	pos      vec.Vec3
	panner   Panner
	ready    bool
	playing  bool
	plays    int
	stops    int
	posSets  int
	loop     bool
	offset   time.Duration
	volSets  []float32
	playedAt int // volSets length when Play was called
}

func (v *fakeVoice) Volume() float32    { return v.volume }
func (v *fakeVoice) Pitch() float32     { return v.pitch }
func (v *fakeVoice) SetPitch(p float32) { v.pitch = p }
func (v *fakeVoice) Position() vec.Vec3 { return v.pos }
func (v *fakeVoice) SetPanner(p Panner) { v.panner = p }
func (v *fakeVoice) IsReady() bool      { return v.ready }
func (v *fakeVoice) IsPlaying() bool    { return v.playing }

func (v *fakeVoice) SetVolume(f float32) {
	v.volume = f
	v.volSets = append(v.volSets, f)
}

func (v *fakeVoice) SetPosition(p vec.Vec3) {
	v.pos = p
	v.posSets++
}

func (v *fakeVoice) Play(loop bool, offset time.Duration) {
	v.plays++
	v.playing = true
	v.loop = loop
	v.offset = offset
	v.playedAt = len(v.volSets)
}

func (v *fakeVoice) Stop() {
	v.stops++
	v.playing = false
}

type fakeBackend struct {
	voices   []*fakeVoice
	calls    int
	notReady bool
	fail     map[string]bool
	purges   int
}

func (b *fakeBackend) Purge() {
	b.purges++
}

func (b *fakeBackend) NewVoice(file string) (Voice, error) {
	b.calls++
	if b.fail[file] {
		return nil, errors.Errorf("no such asset %q", file)
	}
	v := &fakeVoice{
		file:  file,
		ready: !b.notReady,
	}
	b.voices = append(b.voices, v)
	return v, nil
}
