// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

// Vec2 is a position or offset on the map plane, measured in tiles.
// Y grows downwards (south).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a position in listener space as the audio backend sees it.
// Y is height and always 0 on a planar map.
type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Length returns the length of the vector
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns a + b
func Add(a, b Vec2) Vec2 {
	return Vec2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

// Sub returns a - b
func Sub(a, b Vec2) Vec2 {
	return Vec2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{
		X: v.X * s,
		Y: v.Y * s,
	}
}

// Approach moves a towards b by at most step along each axis.
func Approach(a, b Vec2, step float32) Vec2 {
	return Vec2{
		X: approach(a.X, b.X, step),
		Y: approach(a.Y, b.Y, step),
	}
}

func approach(a, b, step float32) float32 {
	if a < b {
		return math32.Min(a+step, b)
	}
	return math32.Max(a-step, b)
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec3, frac float32) Vec3 {
	fi := 1 - frac
	return Vec3{
		fi*a.X + frac*b.X,
		fi*a.Y + frac*b.Y,
		fi*a.Z + frac*b.Z,
	}
}

// Equal returns a == b
func Equal(a Vec3, b Vec3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Near reports whether every component of a and b differs by at most eps.
func Near(a, b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps &&
		math32.Abs(a.Y-b.Y) <= eps &&
		math32.Abs(a.Z-b.Z) <= eps
}
