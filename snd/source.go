// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"time"

	"emittance/math"
	"emittance/math/vec"

	"github.com/google/uuid"
)

// Authoring defaults for an emittance without explicit values.
const (
	DefaultRadius = 5
	DefaultVolume = 90
	DefaultPitch  = 100
)

// Source is the configuration and per frame state of one sound emitter.
// Sources are compared by identity, two emitters may share a file.
type Source struct {
	id          uuid.UUID
	file        string
	maxDistance float32 // tiles
	baseVolume  float32 // 0-1
	pitch       float32 // 1 is unchanged
	rel         vec.Vec2
	loop        bool
	offset      time.Duration
	active      bool
	broken      bool // the backend could not create a voice
}

// NewSource creates an active source. volume is on the authored 0-100
// scale, pitch on the 50-150 scale with 100 meaning unchanged.
func NewSource(file string, radius float32, volume, pitch int) *Source {
	return &Source{
		id:          uuid.Must(uuid.NewV7()),
		file:        file,
		maxDistance: radius,
		baseVolume:  float32(math.Clamp(0, volume, 100)) / 100,
		pitch:       float32(math.Clamp(50, pitch, 150)) / 100,
		loop:        true,
		active:      true,
	}
}

func (s *Source) ID() uuid.UUID              { return s.id }
func (s *Source) File() string               { return s.file }
func (s *Source) MaxDistance() float32       { return s.maxDistance }
func (s *Source) BaseVolume() float32        { return s.baseVolume }
func (s *Source) Pitch() float32             { return s.pitch }
func (s *Source) Active() bool               { return s.active }
func (s *Source) RelativePosition() vec.Vec2 { return s.rel }

// SetPlayParameters changes how the voice is started. It has no effect on
// a voice that already plays.
func (s *Source) SetPlayParameters(loop bool, offset time.Duration) {
	s.loop = loop
	s.offset = offset
}

// SetRelativePosition stores the emitter position minus the listener
// position. The owning entity calls it once per frame.
func (s *Source) SetRelativePosition(v vec.Vec2) {
	s.rel = v
}

// Clear marks the source inactive. The voice keeps playing until the
// registry evicts it on the next update.
func (s *Source) Clear() {
	s.active = false
}
