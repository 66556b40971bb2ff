package commandline

import (
	"flag"
)

var (
	noSound bool
	mono    bool
	no3d    bool
	noHRTF  bool

	basedir string
	level   string
)

func init() {
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")
	flag.BoolVar(&mono, "mono", false, "Force mono output")
	flag.BoolVar(&no3d, "no3d", false, "Only attenuate volume, no positional panning")
	flag.BoolVar(&noHRTF, "nohrtf", false, "Use equal power panning instead of the HRTF model")

	flag.StringVar(&basedir, "basedir", ".", "directory holding audio/, levels and pak files")
	flag.StringVar(&level, "level", "levels/start.lua", "level script to load")
}

func BaseDirectory() string {
	return basedir
}

func Level() string {
	return level
}

func Sound() bool {
	return !noSound
}

func Mono() bool {
	return mono
}

func No3D() bool {
	return no3d
}

func NoHRTF() bool {
	return noHRTF
}

// Overrides returns console lines that apply the flags on top of the
// configuration file.
func Overrides() []string {
	var r []string
	if noSound {
		r = append(r, "nosound 1")
	}
	if mono {
		r = append(r, "s_mono 1")
	}
	if no3d {
		r = append(r, "s_3d 0")
	}
	if noHRTF {
		r = append(r, "s_hrtf 0")
	}
	return r
}
