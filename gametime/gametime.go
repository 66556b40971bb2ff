// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"emittance/cvars"
	"emittance/math"
)

// GameTime paces the frame loop to host_maxfps.
type GameTime struct {
	start      time.Time
	now        func() time.Time
	time       float64
	oldTime    float64
	frameTime  float64
	frameCount int
}

func New() *GameTime {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *GameTime {
	return &GameTime{
		start:     now(),
		now:       now,
		frameTime: 0.1,
	}
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) OldTime() float64   { return h.oldTime }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) FrameIncrease()     { h.frameCount++ }

func maxFPS() float64 {
	// host_maxfps is kept in range by the cvar itself
	return float64(cvars.HostMaxFps.Value())
}

// UpdateTime updates the host time.
// Returns false if it would exceed max fps
func (h *GameTime) UpdateTime() bool {
	h.time = h.now().Sub(h.start).Seconds()
	if h.time-h.oldTime < 1/maxFPS() {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time

	if cvars.HostTimeScale.Value() > 0 {
		h.frameTime *= float64(cvars.HostTimeScale.Value())
	} else {
		h.frameTime = math.Clamp(0.001, h.frameTime, 0.1)
	}
	return true
}

// Wait returns how long the loop may sleep before the next frame is due.
func (h *GameTime) Wait() time.Duration {
	next := h.oldTime + 1/maxFPS()
	d := time.Duration((next - h.now().Sub(h.start).Seconds()) * float64(time.Second))
	return max(d, 0)
}
