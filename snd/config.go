// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"emittance/cvars"
)

// ConfigFromCvars reads the s_ cvars. It is meant to be called once when
// the sound system starts, later changes of the cvars are not picked up.
func ConfigFromCvars() Config {
	return Config{
		Use3D:     cvars.Sound3D.Bool(),
		HRTF:      cvars.SoundHRTF.Bool(),
		Smoothing: cvars.SoundSmooth.Value(),
	}
}
