// SPDX-License-Identifier: GPL-2.0-or-later

package voice

import (
	"emittance/math"
	"emittance/math/vec"
	"emittance/snd"

	"github.com/chewxy/math32"
)

const (
	refDistance = 1
	// how much a source directly behind the listener is damped with HRTF
	rearDamping = 0.3
)

// distanceGain follows the linear distance model between refDistance and
// maxDistance.
func distanceGain(d, maxDistance float32) float32 {
	if maxDistance <= refDistance {
		return 1
	}
	d = math.Clamp(refDistance, d, maxDistance)
	return 1 - (d-refDistance)/(maxDistance-refDistance)
}

// gains returns the left and right channel factors of a voice at listener
// space position p.
func gains(volume float32, p vec.Vec3, pan snd.Panner) (float32, float32) {
	d := p.Length()
	g := volume * distanceGain(d, pan.MaxDistance)
	if d == 0 {
		// equal power at the center
		c := g * math32.Sqrt(0.5)
		return c, c
	}
	if pan.Model == snd.PanHRTF && p.Z > 0 {
		g *= 1 - rearDamping*p.Z/d
	}
	x := (math.Clamp(-1, p.X/d, 1) + 1) / 2
	sin, cos := math32.Sincos(x * math32.Pi / 2)
	return g * cos, g * sin
}

// spatial applies volume and panning of its voice to the resampled clip.
// It runs on the audio goroutine with the output locked.
type spatial struct {
	v *Voice
}

func (s *spatial) Stream(samples [][2]float64) (int, bool) {
	v := s.v
	if v.resampler == nil {
		return 0, false
	}
	n, ok := v.resampler.Stream(samples)
	l, r := gains(v.volume, v.pos, v.panner)
	for i := range samples[:n] {
		samples[i][0] *= float64(l)
		samples[i][1] *= float64(r)
	}
	return n, ok
}

func (s *spatial) Err() error {
	if s.v.resampler == nil {
		return nil
	}
	return s.v.resampler.Err()
}
