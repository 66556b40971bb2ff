// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"time"

	"emittance/math/vec"
	"emittance/rand"
	"emittance/snd"
)

// An idle wandering event takes a step with a chance of 1/wanderEvery
// per frame.
const wanderEvery = 64

// Scene runs the map and the player once per frame.
type Scene struct {
	Map    *Map
	Player *Player
	post   []func()
	frames int
	rnd    rand.Generator
}

func NewScene(r *snd.Registry) *Scene {
	m := NewMap(r)
	return &Scene{
		Map:    m,
		Player: &Player{Character: newCharacter(m, 0, 0)},
		rnd:    rand.New(uint32(time.Now().UnixNano())),
	}
}

// Seed makes wandering reproducible.
func (s *Scene) Seed(seed uint32) {
	s.rnd.NewSeed(seed)
}

// AddPostUpdate registers f to run after every world update.
func (s *Scene) AddPostUpdate(f func()) {
	s.post = append(s.post, f)
}

func (s *Scene) AddTeardown(f func()) {
	s.Map.AddTeardown(f)
}

func (s *Scene) Frames() int {
	return s.frames
}

// Update moves all characters and then runs the post update hooks.
func (s *Scene) Update() {
	s.frames++
	s.Player.move()
	listener := s.Player.real
	for _, e := range s.Map.events {
		if e.wander {
			s.wanderStep(e)
		}
		e.move()
		e.updateSound(listener)
	}
	s.Player.updateSound(listener)
	for _, f := range s.post {
		f()
	}
}

var wanderDirections = [4]snd.Direction{snd.DirDown, snd.DirLeft, snd.DirRight, snd.DirUp}

func (s *Scene) wanderStep(e *Event) {
	if e.IsMoving() || !s.rnd.Chance(1, wanderEvery) {
		return
	}
	e.MoveStraight(wanderDirections[s.rnd.Intn(len(wanderDirections))])
}

// Nearest returns the event closest to the player within maxDistance.
// With onlySound set only events with a sound tag on their page count.
func (s *Scene) Nearest(maxDistance float32, onlySound bool) (*Event, bool) {
	var best *Event
	bd := maxDistance
	for _, e := range s.Map.events {
		if onlySound && !e.HasSound() {
			continue
		}
		d := vec.Sub(e.real, s.Player.real).Length()
		if (best == nil && d <= bd) || d < bd {
			best, bd = e, d
		}
	}
	return best, best != nil
}

// character resolves the event argument of a command. 0 is the calling
// event, negative ids are the player.
func (s *Scene) character(id, caller int) (*Character, bool) {
	switch {
	case id < 0:
		return &s.Player.Character, true
	case id == 0:
		id = caller
	}
	e, ok := s.Map.Event(id)
	if !ok {
		return nil, false
	}
	return &e.Character, true
}
