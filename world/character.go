// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"emittance/math/vec"
	"emittance/snd"

	"github.com/chewxy/math32"
)

const (
	// NormalSpeed moves a character by one tile in 16 frames.
	NormalSpeed = 4
	minSpeed    = 1
	maxSpeed    = 6
)

// Character is anything standing on the map. It can emit sound.
type Character struct {
	snd.Emitter
	m         *Map
	x, y      int
	real      vec.Vec2 // drawn position, glides towards x,y
	direction snd.Direction
	speed     int
	through   bool
}

func newCharacter(m *Map, x, y int) Character {
	return Character{
		m:         m,
		x:         x,
		y:         y,
		real:      vec.Vec2{X: float32(x), Y: float32(y)},
		direction: snd.DirDown,
		speed:     NormalSpeed,
	}
}

// Tile returns the tile the character stands on or moves to.
func (c *Character) Tile() (int, int) {
	return c.x, c.y
}

// RealPosition is the position including the movement in progress.
func (c *Character) RealPosition() vec.Vec2 {
	return c.real
}

func (c *Character) Direction() snd.Direction {
	return c.direction
}

// SetDirection turns the character. Diagonals are accepted but sound as
// facing north.
func (c *Character) SetDirection(d snd.Direction) {
	c.direction = d
}

// Locate moves the character instantly.
func (c *Character) Locate(x, y int) {
	c.x, c.y = x, y
	c.real = vec.Vec2{X: float32(x), Y: float32(y)}
}

func (c *Character) SetSpeed(s int) {
	c.speed = min(max(s, minSpeed), maxSpeed)
}

func (c *Character) SetThrough(t bool) {
	c.through = t
}

func (c *Character) IsMoving() bool {
	return c.real.X != float32(c.x) || c.real.Y != float32(c.y)
}

func (c *Character) distancePerFrame() float32 {
	return math32.Pow(2, float32(c.speed)) / 256
}

func delta(d snd.Direction) (int, int) {
	switch d {
	case snd.DirDown:
		return 0, 1
	case snd.DirLeft:
		return -1, 0
	case snd.DirRight:
		return 1, 0
	case snd.DirUp:
		return 0, -1
	}
	return 0, 0
}

// MoveStraight turns towards d and starts moving one tile if the target is
// passable. It does nothing while a move is in progress.
func (c *Character) MoveStraight(d snd.Direction) bool {
	if c.IsMoving() {
		return false
	}
	c.direction = d
	dx, dy := delta(d)
	if dx == 0 && dy == 0 {
		return false
	}
	nx, ny := c.x+dx, c.y+dy
	if c.m == nil || !c.m.Passable(nx, ny) {
		return false
	}
	c.x, c.y = nx, ny
	return true
}

// SetSoundEmittance replaces the sound this character emits.
func (c *Character) SetSoundEmittance(file string, radius float32, volume, pitch int) *snd.Source {
	return c.Emitter.Set(c.registry(), file, radius, volume, pitch)
}

func (c *Character) ClearSoundEmittance() {
	c.Emitter.Clear()
}

func (c *Character) registry() *snd.Registry {
	if c.m == nil {
		return nil
	}
	return c.m.registry
}

func (c *Character) move() {
	target := vec.Vec2{X: float32(c.x), Y: float32(c.y)}
	c.real = vec.Approach(c.real, target, c.distancePerFrame())
}

// updateSound hands the offset to the listener to the emitter.
func (c *Character) updateSound(listener vec.Vec2) {
	c.Emitter.Update(c.registry(), vec.Sub(c.real, listener))
}
