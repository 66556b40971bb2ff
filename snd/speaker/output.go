// SPDX-License-Identifier: GPL-2.0-or-later

package speaker

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Output mixes all voices into the device stream. It never drains, the
// device is fed silence while nothing plays.
// Voices change their parameters between Lock and Unlock so the audio
// goroutine never sees a half written update.
type Output struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	mixer      beep.Mixer
	gain       effects.Gain
	out        beep.Streamer
}

func NewOutput(sr beep.SampleRate, mono bool) *Output {
	o := &Output{
		sampleRate: sr,
	}
	o.gain.Streamer = &o.mixer
	o.out = &o.gain
	if mono {
		o.out = effects.Mono(&o.gain)
	}
	return o
}

func (o *Output) SampleRate() beep.SampleRate {
	return o.sampleRate
}

func (o *Output) Lock() {
	o.mu.Lock()
}

func (o *Output) Unlock() {
	o.mu.Unlock()
}

// Add starts mixing s. It is removed once it drains.
func (o *Output) Add(s beep.Streamer) {
	o.mu.Lock()
	o.mixer.Add(s)
	o.mu.Unlock()
}

// Len returns the number of streams still mixed.
func (o *Output) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mixer.Len()
}

// SetVolume sets the master volume, 1 is unchanged. It does nothing on a
// nil Output.
func (o *Output) SetVolume(v float64) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.gain.Gain = v - 1
	o.mu.Unlock()
}

func (o *Output) Stream(samples [][2]float64) (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	n, _ := o.out.Stream(samples)
	clear(samples[n:])
	return len(samples), true
}

func (o *Output) Err() error {
	return nil
}
