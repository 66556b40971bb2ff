// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"

	"emittance/math/vec"
)

type fakeHooks struct {
	post     []func()
	teardown []func()
}

func (h *fakeHooks) AddPostUpdate(f func()) { h.post = append(h.post, f) }
func (h *fakeHooks) AddTeardown(f func())   { h.teardown = append(h.teardown, f) }

func (h *fakeHooks) frame() {
	for _, f := range h.post {
		f()
	}
}

func (h *fakeHooks) reset() {
	for _, f := range h.teardown {
		f()
	}
}

type fakeListener struct {
	dir Direction
}

func (l *fakeListener) Direction() Direction { return l.dir }

func newTestEngine(cfg Config) (*Engine, *fakeBackend) {
	b := &fakeBackend{}
	return NewEngine(cfg, NewRegistry(b)), b
}

func TestNewEngineClampsSmoothing(t *testing.T) {
	e, _ := newTestEngine(Config{Smoothing: 0})
	if s := e.Config().Smoothing; s != minSmoothing {
		t.Errorf("Smoothing = %v want %v", s, minSmoothing)
	}
	e, _ = newTestEngine(Config{Smoothing: 4})
	if s := e.Config().Smoothing; s != 1 {
		t.Errorf("Smoothing = %v want 1", s)
	}
}

func TestStartIsImmediate(t *testing.T) {
	e, b := newTestEngine(DefaultConfig())
	s := NewSource("bgs/Wind", 5, 90, 100)
	s.SetRelativePosition(vec.Vec2{X: 0, Y: -2.5})
	e.Registry().EnsureBound(s)
	e.Update(DirUp)

	v := b.voices[0]
	if v.plays != 1 || !v.loop {
		t.Fatalf("plays %d loop %v want 1,true", v.plays, v.loop)
	}
	want := TargetVolume(0.9, 2.5, 5)
	if v.volume != want {
		t.Errorf("volume = %v want %v", v.volume, want)
	}
	if v.pos.X != 0 || v.pos.Z != -2.5 || v.pos.Y != 0 {
		t.Errorf("position = %v want {0 0 -2.5}", v.pos)
	}
	if v.panner.Model != PanHRTF || v.panner.Distance != DistanceLinear || v.panner.MaxDistance != 5 {
		t.Errorf("panner = %+v", v.panner)
	}
}

func TestPannerModel(t *testing.T) {
	e, b := newTestEngine(Config{Use3D: true, Smoothing: 1})
	s := NewSource("bgs/Wind", 0, 90, 100)
	e.Registry().EnsureBound(s)
	e.Update(DirUp)
	p := b.voices[0].panner
	if p.Model != PanEqualPower || p.MaxDistance != 1 {
		t.Errorf("panner = %+v want equalpower with max distance 1", p)
	}
}

func TestSmoothingExact(t *testing.T) {
	e, b := newTestEngine(Config{Use3D: true, Smoothing: 1})
	s := NewSource("bgs/Wind", 5, 90, 100)
	e.Registry().EnsureBound(s)
	e.Update(DirUp)
	s.SetRelativePosition(vec.Vec2{X: 2.5, Y: 0})
	e.Update(DirUp)
	v := b.voices[0]
	if want := TargetVolume(0.9, 2.5, 5); v.volume != want {
		t.Errorf("volume = %v want %v", v.volume, want)
	}
	if v.pos.X != 2.5 || v.pos.Z != 0 {
		t.Errorf("position = %v want {2.5 0 0}", v.pos)
	}
}

func TestSmoothingConverges(t *testing.T) {
	e, b := newTestEngine(Config{Use3D: true, Smoothing: 0.15})
	s := NewSource("bgs/Wind", 5, 90, 100)
	e.Registry().EnsureBound(s)
	e.Update(DirUp)
	s.SetRelativePosition(vec.Vec2{X: 0, Y: 4})
	v := b.voices[0]
	e.Update(DirUp)
	if v.volume == TargetVolume(0.9, 4, 5) {
		t.Errorf("volume jumped to target")
	}
	for i := 0; i < 200; i++ {
		e.Update(DirUp)
	}
	if want := TargetVolume(0.9, 4, 5); !near(v.volume, want) {
		t.Errorf("volume = %v want %v", v.volume, want)
	}
	if !near(v.pos.Z, 4) || !near(v.pos.X, 0) {
		t.Errorf("position = %v want {0 0 4}", v.pos)
	}
}

func TestFacingRotatesPosition(t *testing.T) {
	e, b := newTestEngine(Config{Use3D: true, Smoothing: 1})
	s := NewSource("bgs/Wind", 5, 90, 100)
	s.SetRelativePosition(vec.Vec2{X: 0, Y: -1})
	e.Registry().EnsureBound(s)
	e.Update(DirRight)
	v := b.voices[0]
	if !near(v.pos.X, -1) || !near(v.pos.Z, 0) {
		t.Errorf("position facing east = %v want {-1 0 0}", v.pos)
	}
}

func TestEvictionWithinOneUpdate(t *testing.T) {
	e, b := newTestEngine(DefaultConfig())
	s := NewSource("bgs/Wind", 5, 90, 100)
	e.Registry().EnsureBound(s)
	e.Update(DirUp)
	s.Clear()
	e.Update(DirUp)
	if e.Registry().Len() != 0 {
		t.Errorf("binding survived an update")
	}
	if v := b.voices[0]; v.stops != 1 {
		t.Errorf("voice stopped %d times want 1", v.stops)
	}
}

func TestStoppedVoiceIsNotRestarted(t *testing.T) {
	e, b := newTestEngine(DefaultConfig())
	s := NewSource("me/Fanfare", 5, 90, 100)
	s.SetPlayParameters(false, 0)
	e.Registry().EnsureBound(s)
	e.Update(DirUp)
	v := b.voices[0]
	v.playing = false
	n := len(v.volSets)
	for i := 0; i < 5; i++ {
		e.Update(DirUp)
	}
	if v.plays != 1 || len(v.volSets) != n {
		t.Errorf("ended voice was touched: plays %d", v.plays)
	}
	if v.loop {
		t.Errorf("one shot voice played looped")
	}
}

// Scenario: 2D mode never moves the voice.
func TestNo3DKeepsPosition(t *testing.T) {
	e, b := newTestEngine(Config{Use3D: false, Smoothing: 0.5})
	s := NewSource("bgs/Wind", 5, 90, 100)
	e.Registry().EnsureBound(s)
	for i := 0; i < 20; i++ {
		s.SetRelativePosition(vec.Vec2{X: float32(i) / 4, Y: -float32(i) / 8})
		e.Update(Direction(2 * (i%4 + 1)))
	}
	v := b.voices[0]
	if v.posSets != 0 || v.pos != (vec.Vec3{}) {
		t.Errorf("position written %d times: %v", v.posSets, v.pos)
	}
	if v.volume == 0.9 {
		t.Errorf("volume did not follow distance")
	}
}

// Scenario: a map reset stops every voice exactly once.
func TestTeardownFlushes(t *testing.T) {
	e, b := newTestEngine(DefaultConfig())
	h := &fakeHooks{}
	l := &fakeListener{dir: DirUp}
	e.Subscribe(h, l)
	for _, f := range []string{"a", "b", "c"} {
		e.Registry().EnsureBound(NewSource(f, 5, 90, 100))
	}
	h.frame()
	h.reset()
	if e.Registry().Len() != 0 {
		t.Errorf("registry not empty after reset")
	}
	if b.purges != 1 {
		t.Errorf("backend purged %d times want 1", b.purges)
	}
	h.frame()
	for _, v := range b.voices {
		if v.stops != 1 {
			t.Errorf("voice %s stopped %d times want 1", v.file, v.stops)
		}
	}
}

// Scenario: a voice that needs 10 frames to load starts on the 11th
// without a fade in.
func TestLateReady(t *testing.T) {
	b := &fakeBackend{notReady: true}
	e := NewEngine(Config{Use3D: true, Smoothing: 0.1}, NewRegistry(b))
	s := NewSource("bgs/Rain", 5, 90, 100)
	e.Registry().EnsureBound(s)
	v := b.voices[0]
	for i := 1; i <= 10; i++ {
		s.SetRelativePosition(vec.Vec2{X: float32(i) / 10})
		e.Update(DirUp)
		if v.plays != 0 {
			t.Fatalf("played on tick %d", i)
		}
	}
	v.ready = true
	s.SetRelativePosition(vec.Vec2{X: 1.5})
	e.Update(DirUp)
	if v.plays != 1 {
		t.Fatalf("plays = %d want 1", v.plays)
	}
	want := TargetVolume(0.9, 1.5, 5)
	if v.playedAt == 0 || v.volSets[v.playedAt-1] != want {
		t.Errorf("volume at play = %v want %v", v.volSets, want)
	}
	e.Update(DirUp)
	if v.plays != 1 {
		t.Errorf("plays = %d want 1", v.plays)
	}
}

func TestNilEngineUpdate(t *testing.T) {
	var e *Engine
	e.Update(DirUp)
	e = NewEngine(DefaultConfig(), nil)
	e.Update(DirUp)
}
