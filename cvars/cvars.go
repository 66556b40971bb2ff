// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"emittance/cvar"
)

var (
	HostMaxFps    *cvar.Cvar
	HostTimeScale *cvar.Cvar
	Sound3D       *cvar.Cvar
	SoundHRTF     *cvar.Cvar
	SoundMono     *cvar.Cvar
	SoundSmooth   *cvar.Cvar
	Volume        *cvar.Cvar
	NoSound       *cvar.Cvar
)

func init() {
	HostMaxFps = cvar.MustRegister("host_maxfps", "60", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	NoSound = cvar.MustRegister("nosound", "0", cvar.NONE)
	// the s_ values below are read once when the sound system starts
	Sound3D = cvar.MustRegister("s_3d", "1", cvar.ARCHIVE)
	SoundHRTF = cvar.MustRegister("s_hrtf", "1", cvar.ARCHIVE)
	SoundMono = cvar.MustRegister("s_mono", "0", cvar.ARCHIVE)
	SoundSmooth = cvar.MustRegister("s_smoothing", "0.15", cvar.ARCHIVE)
	Volume = cvar.MustRegister("s_volume", "0.7", cvar.ARCHIVE)

	HostMaxFps.SetRange(10, 1000)
	SoundSmooth.SetRange(0.01, 1)
	Volume.SetRange(0, 1)
}
