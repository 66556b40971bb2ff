// SPDX-License-Identifier: GPL-2.0-or-later

package voice

import (
	"log"
	"sync/atomic"
	"time"

	"emittance/math/vec"
	"emittance/snd"
	"emittance/snd/speaker"

	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
)

const resampleQuality = 4

// Voice plays one clip. The parameters are written by the frame loop
// under the output lock and read by the audio goroutine.
type Voice struct {
	out  *speaker.Output
	clip *clip

	volume float32
	pitch  float32
	pos    vec.Vec3
	panner snd.Panner

	playing   atomic.Bool
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
}

func newVoice(out *speaker.Output, c *clip) *Voice {
	return &Voice{
		out:    out,
		clip:   c,
		volume: 1,
		pitch:  1,
	}
}

func (v *Voice) Volume() float32 {
	return v.volume
}

func (v *Voice) SetVolume(f float32) {
	v.out.Lock()
	v.volume = f
	v.out.Unlock()
}

func (v *Voice) Pitch() float32 {
	return v.pitch
}

func (v *Voice) SetPitch(p float32) {
	v.out.Lock()
	v.pitch = p
	if v.resampler != nil {
		v.resampler.SetRatio(v.ratio())
	}
	v.out.Unlock()
}

func (v *Voice) Position() vec.Vec3 {
	return v.pos
}

func (v *Voice) SetPosition(p vec.Vec3) {
	v.out.Lock()
	v.pos = p
	v.out.Unlock()
}

func (v *Voice) SetPanner(p snd.Panner) {
	v.out.Lock()
	v.panner = p
	v.out.Unlock()
}

func (v *Voice) IsReady() bool {
	return v.clip.ready.Load()
}

func (v *Voice) IsPlaying() bool {
	return v.playing.Load()
}

// ratio converts from the clip to the output rate and applies the pitch.
func (v *Voice) ratio() float64 {
	in := v.clip.buf.Format().SampleRate
	return float64(in) / float64(v.out.SampleRate()) * float64(v.pitch)
}

func (v *Voice) stream(loop bool, offset time.Duration) (beep.Streamer, error) {
	buf := v.clip.buf
	s := buf.Streamer(0, buf.Len())
	if p := buf.Format().SampleRate.N(offset); p > 0 && buf.Len() > 0 {
		if err := s.Seek(p % buf.Len()); err != nil {
			return nil, err
		}
	}
	if !loop {
		return s, nil
	}
	return beep.Loop2(s)
}

// Play starts the voice. Calling it on a voice that is not ready or
// already plays does nothing.
func (v *Voice) Play(loop bool, offset time.Duration) {
	if !v.IsReady() || v.IsPlaying() {
		return
	}
	s, err := v.stream(loop, offset)
	if err != nil {
		log.Print(errors.Wrapf(err, "play %s", v.clip.name))
		return
	}
	v.out.Lock()
	v.resampler = beep.ResampleRatio(resampleQuality, v.ratio(), s)
	v.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(&spatial{v: v}, beep.Callback(func() {
			v.playing.Store(false)
		})),
	}
	v.out.Unlock()
	v.playing.Store(true)
	v.out.Add(v.ctrl)
}

func (v *Voice) Stop() {
	v.out.Lock()
	if v.ctrl != nil {
		// a drained Ctrl is dropped by the mixer
		v.ctrl.Streamer = nil
		v.ctrl = nil
	}
	v.resampler = nil
	v.out.Unlock()
	v.playing.Store(false)
}
