// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"emittance/math"
)

// EffectiveMaxDistance guards the falloff against a zero or negative radius.
func EffectiveMaxDistance(d float32) float32 {
	if d > 0 {
		return d
	}
	return 1
}

// TargetVolume falls off linearly from base at distance 0 to silence at
// maxDistance.
func TargetVolume(base, distance, maxDistance float32) float32 {
	m := EffectiveMaxDistance(maxDistance)
	return base * math.Clamp(0, (m-distance)/m, 1)
}

// Smooth moves current a fraction f towards target. Repeated calls converge
// on target but only reach it for f == 1.
func Smooth(current, target, f float32) float32 {
	return math.Lerp(current, target, f)
}
