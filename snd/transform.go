// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/chewxy/math32"
)

// Direction is a facing in numpad notation as the map uses it.
type Direction int

const (
	DirNone  Direction = 0
	DirDown  Direction = 2
	DirLeft  Direction = 4
	DirRight Direction = 6
	DirUp    Direction = 8
)

// Angle returns the clockwise rotation of the listener from north in
// radians. Diagonal facings are not supported and count as north.
func (d Direction) Angle() float32 {
	switch d {
	case DirUp:
		return 0
	case DirRight:
		return math32.Pi / 2
	case DirDown:
		return math32.Pi
	case DirLeft:
		return 3 * math32.Pi / 2
	}
	return 0
}

// Transform rotates the map offset (dx, dy) of an emitter into listener
// space for a listener rotated by angle. The listener looks towards -z,
// +x is to its right. The height axis is not returned, it is always 0.
func Transform(dx, dy, angle float32) (x, z float32) {
	sin, cos := math32.Sincos(angle)
	x = dx*cos + dy*sin
	z = dy*cos - dx*sin
	return x, z
}
