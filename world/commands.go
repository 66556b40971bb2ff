// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"emittance/cmd"
	"emittance/conlog"
	"emittance/snd"
)

// bgm is usually meant to fill a room
const bgmRadius = 10

// RegisterCommands adds the emittance commands of s through add.
func RegisterCommands(add func(string, cmd.QFunc) error, s *Scene) error {
	for _, c := range []struct {
		name   string
		folder string
		radius float32
	}{
		{"emit_bgs", "bgs", snd.DefaultRadius},
		{"emit_bgm", "bgm", bgmRadius},
		{"emit_se", "se", snd.DefaultRadius},
		{"emit_me", "me", snd.DefaultRadius},
	} {
		if err := add(c.name, s.emitCommand(c.name, c.folder, c.radius)); err != nil {
			return err
		}
	}
	if err := add("emit_clear", s.clearCommand); err != nil {
		return err
	}
	if err := add("event_page", s.pageCommand); err != nil {
		return err
	}
	return add("soundlist", s.soundList)
}

// emit_xxx <event> <file> [radius] [volume] [pitch]
func (s *Scene) emitCommand(name, folder string, radius float32) cmd.QFunc {
	return func(a cmd.Arguments, caller int) error {
		if a.Argc() < 3 {
			conlog.Printf("%s <event> <file> [radius] [volume] [pitch]\n", name)
			return nil
		}
		id := a.Argv(1).Int()
		c, ok := s.character(id, caller)
		if !ok {
			conlog.Printf("%s: no event %d\n", name, id)
			return nil
		}
		r, volume, pitch := radius, snd.DefaultVolume, snd.DefaultPitch
		if a.Argc() > 3 {
			r = a.Argv(3).Float32()
		}
		if a.Argc() > 4 {
			volume = a.Argv(4).Int()
		}
		if a.Argc() > 5 {
			pitch = a.Argv(5).Int()
		}
		c.SetSoundEmittance(folder+"/"+a.Argv(2).String(), r, volume, pitch)
		return nil
	}
}

// emit_clear <event>
func (s *Scene) clearCommand(a cmd.Arguments, caller int) error {
	id := a.Argv(1).Int()
	c, ok := s.character(id, caller)
	if !ok {
		conlog.Printf("emit_clear: no event %d\n", id)
		return nil
	}
	c.ClearSoundEmittance()
	return nil
}

// event_page <event> <page>
func (s *Scene) pageCommand(a cmd.Arguments, caller int) error {
	if a.Argc() != 3 {
		conlog.Printf("event_page <event> <page>\n")
		return nil
	}
	id := a.Argv(1).Int()
	if id == 0 {
		id = caller
	}
	e, ok := s.Map.Event(id)
	if !ok {
		conlog.Printf("event_page: no event %d\n", id)
		return nil
	}
	e.SetPage(a.Argv(2).Int())
	return nil
}

func (s *Scene) soundList(_ cmd.Arguments, _ int) error {
	r := s.Map.Registry()
	r.Each(func(i snd.Info) {
		state := "loading"
		switch {
		case i.Playing:
			state = "playing"
		case i.Started:
			state = "ended"
		}
		conlog.SafePrintf("%v %-20s %5.1f %4.2f %s\n", i.ID, i.File, i.Distance, i.Volume, state)
	})
	conlog.SafePrintf("%d sounds\n", r.Len())
	return nil
}
