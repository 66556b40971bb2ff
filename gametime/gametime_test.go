// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"testing"
	"time"

	"emittance/cvars"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func TestUpdateTimeCapsFps(t *testing.T) {
	cvars.HostMaxFps.SetValue(50)
	defer cvars.HostMaxFps.Reset()
	c := &clock{t: time.Unix(1000, 0)}
	h := newWithClock(c.now)

	c.t = c.t.Add(10 * time.Millisecond)
	if h.UpdateTime() {
		t.Errorf("frame after 10ms accepted at 50 fps")
	}
	if w := h.Wait(); w < 9*time.Millisecond || w > 11*time.Millisecond {
		t.Errorf("Wait = %v want 10ms", w)
	}
	c.t = c.t.Add(10 * time.Millisecond)
	if !h.UpdateTime() {
		t.Fatalf("frame after 20ms rejected")
	}
	if ft := h.FrameTime(); ft < 0.0199 || ft > 0.0201 {
		t.Errorf("FrameTime = %v want 0.02", ft)
	}
	if h.Time() != h.OldTime() {
		t.Errorf("OldTime not updated")
	}
}

func TestFrameTimeClamped(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	h := newWithClock(c.now)
	c.t = c.t.Add(3 * time.Second)
	if !h.UpdateTime() {
		t.Fatalf("frame rejected")
	}
	if h.FrameTime() != 0.1 {
		t.Errorf("FrameTime = %v want 0.1", h.FrameTime())
	}
	if h.Wait() <= 0 {
		t.Errorf("Wait right after a frame = %v", h.Wait())
	}
	h.FrameIncrease()
	if h.FrameCount() != 1 {
		t.Errorf("FrameCount = %d want 1", h.FrameCount())
	}
}
