// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"strings"

	"emittance/cmd"
	"emittance/conlog"
	"emittance/keys"
	"emittance/snd"

	"github.com/pkg/errors"
)

func (h *Host) addCommands() error {
	for _, c := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"quit", h.quitCommand},
		{"echo", echo},
		{"clear", h.clearCommand},
		{"toggleconsole", h.toggleConsole},
	} {
		if err := h.commands.Add(c.name, c.f); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) addWorldCommands() error {
	for _, c := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"walk", h.walk},
		{"face", h.face},
		{"toggle_nearest", h.toggleNearest},
		{"level", h.levelCommand},
	} {
		if err := h.commands.Add(c.name, c.f); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) quitCommand(_ cmd.Arguments, _ int) error {
	h.quit = true
	return nil
}

func echo(a cmd.Arguments, _ int) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

func (h *Host) clearCommand(_ cmd.Arguments, _ int) error {
	h.console.Clear()
	return nil
}

func (h *Host) toggleConsole(_ cmd.Arguments, _ int) error {
	if h.dest == keys.Console {
		h.dest = keys.Game
	} else {
		h.dest = keys.Console
	}
	return nil
}

// parseDirection accepts the numpad digits 2, 4, 6, 8 or a name.
func parseDirection(s string) (snd.Direction, error) {
	switch strings.ToLower(s) {
	case "2", "down", "south":
		return snd.DirDown, nil
	case "4", "left", "west":
		return snd.DirLeft, nil
	case "6", "right", "east":
		return snd.DirRight, nil
	case "8", "up", "north":
		return snd.DirUp, nil
	}
	return snd.DirNone, errors.Errorf("bad direction %q", s)
}

func (h *Host) walk(a cmd.Arguments, _ int) error {
	if a.Argc() != 2 {
		conlog.Printf("walk <2|4|6|8> : step one tile\n")
		return nil
	}
	d, err := parseDirection(a.Argv(1).String())
	if err != nil {
		return err
	}
	// a blocked step still turns the player
	h.scene.Player.MoveStraight(d)
	return nil
}

func (h *Host) face(a cmd.Arguments, _ int) error {
	if a.Argc() != 2 {
		conlog.Printf("face <2|4|6|8> : turn without moving\n")
		return nil
	}
	d, err := parseDirection(a.Argv(1).String())
	if err != nil {
		return err
	}
	if !h.scene.Player.IsMoving() {
		h.scene.Player.SetDirection(d)
	}
	return nil
}

// toggleNearest silences the closest event with a sound page or lets it
// emit again.
func (h *Host) toggleNearest(_ cmd.Arguments, _ int) error {
	e, ok := h.scene.Nearest(nearestRange, true)
	if !ok {
		conlog.Printf("no emitter nearby\n")
		return nil
	}
	h.selected = e
	if e.Source() != nil {
		e.ClearSoundEmittance()
		conlog.Printf("%s silenced\n", e.Name())
		return nil
	}
	e.Refresh()
	if src := e.Source(); src != nil {
		conlog.Printf("%s emits %s\n", e.Name(), src.File())
	}
	return nil
}

func (h *Host) levelCommand(a cmd.Arguments, _ int) error {
	if a.Argc() != 2 {
		conlog.Printf("level <script> : load a level script\n")
		return nil
	}
	return h.LoadLevel(a.Argv(1).String())
}
