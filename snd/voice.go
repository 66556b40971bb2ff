// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"time"

	"emittance/math/vec"
)

type PanningModel int

const (
	PanEqualPower PanningModel = iota
	PanHRTF
)

func (m PanningModel) String() string {
	if m == PanHRTF {
		return "HRTF"
	}
	return "equalpower"
}

type DistanceModel int

const (
	DistanceLinear DistanceModel = iota
)

// Panner configures the spatialization stage of a voice.
type Panner struct {
	Model       PanningModel
	Distance    DistanceModel
	MaxDistance float32
}

// Voice is one playable instance of an audio asset in the backend.
// All methods must be cheap and must not block, they are called from the
// frame loop. IsReady and IsPlaying are polled every frame.
type Voice interface {
	Volume() float32
	SetVolume(v float32)
	Pitch() float32
	SetPitch(p float32)
	// Position is the listener space position, the listener faces -Z.
	Position() vec.Vec3
	SetPosition(p vec.Vec3)
	SetPanner(p Panner)
	IsReady() bool
	IsPlaying() bool
	Play(loop bool, offset time.Duration)
	Stop()
}

// Backend creates voices from asset references like "bgs/Drips".
type Backend interface {
	NewVoice(file string) (Voice, error)
}

// A Purger is a Backend that caches decoded assets. The cache is dropped
// whenever the map is torn down.
type Purger interface {
	Purge()
}
