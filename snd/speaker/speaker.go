// SPDX-License-Identifier: GPL-2.0-or-later

package speaker

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	beepspeaker "github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
)

var (
	mu     sync.Mutex
	device *Output
)

// bufferSize keeps the latency of a parameter change below one frame at
// 60 fps.
func bufferSize(sr beep.SampleRate) int {
	return sr.N(time.Second) / 60
}

// Init opens the audio device and starts playing o on it.
// Only one output can be open at a time.
func Init(o *Output) error {
	mu.Lock()
	defer mu.Unlock()
	if device != nil {
		return errors.New("speaker already initialized")
	}
	if err := beepspeaker.Init(o.SampleRate(), bufferSize(o.SampleRate())); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	beepspeaker.Play(o)
	device = o
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if device == nil {
		return
	}
	beepspeaker.Close()
	device = nil
}

// Suspend halts the device while the terminal has lost focus. Suspend
// and Resume do nothing while no device is open.
func Suspend() error {
	mu.Lock()
	defer mu.Unlock()
	if device == nil {
		return nil
	}
	return errors.Wrap(beepspeaker.Suspend(), "speaker suspend")
}

func Resume() error {
	mu.Lock()
	defer mu.Unlock()
	if device == nil {
		return nil
	}
	return errors.Wrap(beepspeaker.Resume(), "speaker resume")
}
