// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	cmdl "emittance/commandline"
	"emittance/conlog"
	"emittance/cvar"
	"emittance/cvars"
	"emittance/filesystem"
	"emittance/gametime"
	"emittance/host"
	"emittance/snd/speaker"
	"emittance/snd/voice"
	"emittance/window"

	"github.com/gopxl/mainthread/v2"
)

const (
	configFile = "emittance.cfg"
	savedFile  = "config.cfg"
	logFile    = "emittance.log"
)

func main() {
	flag.Parse()
	var err error
	mainthread.Run(func() {
		err = run()
	})
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := filesystem.UseBaseDir(cmdl.BaseDirectory()); err != nil {
		return err
	}
	defer filesystem.Close()

	// the terminal belongs to the map from now on
	lf, err := os.Create(filepath.Join(filesystem.BaseDir(), logFile))
	if err != nil {
		return err
	}
	defer lf.Close()
	log.SetOutput(lf)

	h, err := host.New(filesystem.ReadFile)
	if err != nil {
		return err
	}
	if !filesystem.Exists(configFile) {
		conlog.Printf("no %s, using defaults\n", configFile)
	}
	h.Configure([]string{configFile, savedFile}, cmdl.Overrides())
	defer func() {
		if err := h.WriteConfig(filepath.Join(filesystem.BaseDir(), savedFile)); err != nil {
			log.Printf("%v", err)
		}
	}()

	out := speaker.NewOutput(speaker.DefaultSampleRate, cvars.SoundMono.Bool())
	setVolume := func(cv *cvar.Cvar) {
		out.SetVolume(float64(cv.Value()))
	}
	cvars.Volume.SetCallback(setVolume)
	setVolume(cvars.Volume)
	if !cvars.NoSound.Bool() {
		if err := speaker.Init(out); err != nil {
			// keep running silent
			log.Printf("sound disabled: %v", err)
		} else {
			defer speaker.Close()
		}
	}

	b := voice.NewBackend(out, func(name string) (io.ReadCloser, string, error) {
		return filesystem.ResolveAudio(name)
	})
	if err := h.StartWorld(b); err != nil {
		return err
	}
	defer h.Shutdown()

	mainthread.Call(func() {
		err = window.Init()
	})
	if err != nil {
		return err
	}
	defer mainthread.Call(window.Shutdown)

	h.UseConsole()
	defer conlog.SetPrintf(nil)
	defer conlog.SetSafePrintf(nil)
	if err := h.Console().LoadHistory(filesystem.BaseDir()); err != nil {
		log.Printf("history: %v", err)
	}
	defer func() {
		if err := h.Console().SaveHistory(filesystem.BaseDir()); err != nil {
			log.Printf("history: %v", err)
		}
	}()

	if err := h.LoadLevel(cmdl.Level()); err != nil {
		return err
	}
	h.Run(gametime.New())
	return nil
}
