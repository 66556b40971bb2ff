// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func TestDirectionAngle(t *testing.T) {
	tests := []struct {
		d    Direction
		want float32
	}{
		{DirUp, 0},
		{DirRight, math32.Pi / 2},
		{DirDown, math32.Pi},
		{DirLeft, 3 * math32.Pi / 2},
		{DirNone, 0},
		// diagonals are treated as north
		{1, 0}, {3, 0}, {7, 0}, {9, 0},
	}
	for _, tc := range tests {
		if got := tc.d.Angle(); got != tc.want {
			t.Errorf("Direction(%d).Angle() = %v want %v", tc.d, got, tc.want)
		}
	}
}

func TestTransformFront(t *testing.T) {
	x, z := Transform(0, -1, DirUp.Angle())
	if x != 0 || z >= 0 {
		t.Errorf("Transform(0,-1,north) = %v,%v want 0,<0", x, z)
	}
	x, z = Transform(1, 0, DirUp.Angle())
	if x != 1 || z != 0 {
		t.Errorf("Transform(1,0,north) = %v,%v want 1,0", x, z)
	}
}

func TestTransformRotation(t *testing.T) {
	_, front := Transform(0, -1, DirUp.Angle())
	x, z := Transform(0, -1, DirRight.Angle())
	if !near(x, front) || !near(z, 0) {
		t.Errorf("Transform(0,-1,east) = %v,%v want %v,0", x, z, front)
	}
	// facing south the northern emitter is behind
	x, z = Transform(0, -1, DirDown.Angle())
	if !near(x, 0) || !near(z, 1) {
		t.Errorf("Transform(0,-1,south) = %v,%v want 0,1", x, z)
	}
	// facing west the northern emitter is to the right
	x, z = Transform(0, -1, DirLeft.Angle())
	if !near(x, 1) || !near(z, 0) {
		t.Errorf("Transform(0,-1,west) = %v,%v want 1,0", x, z)
	}
}

func TestTransformKeepsDistance(t *testing.T) {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		x, z := Transform(3, -4, d.Angle())
		if l := math32.Hypot(x, z); !near(l, 5) {
			t.Errorf("|Transform(3,-4,%d)| = %v want 5", d, l)
		}
	}
}
