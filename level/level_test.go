// SPDX-License-Identifier: GPL-2.0-or-later

package level

import (
	"os"
	"strings"
	"testing"

	"emittance/snd"
	"emittance/world"

	"github.com/pkg/errors"
)

const cave = `
map { name = "cave", rows = {
	"#######",
	"#.....#",
	"#######",
} }
player { x = 1, y = 1, direction = 6 }
event { id = 1, name = "drips", x = 4, y = 1,
	pages = { { "water", "<s_emittance: bgs/Drips>", "<s_e_radius: 4>" }, { "dry" } } }
event { id = 2, name = "ghost", x = 5, y = 1, through = true, direction = 4, wander = true,
	comments = { "<s_emittance: se/Whisper>" } }
exec "emit_bgm 1 Cave"
`

func newLoader(files map[string]string) (*Loader, *world.Scene, *[]string) {
	s := world.NewScene(nil)
	var lines []string
	read := func(name string) ([]byte, error) {
		b, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(b), nil
	}
	return NewLoader(s, read, func(l string) { lines = append(lines, l) }), s, &lines
}

func TestLoad(t *testing.T) {
	l, s, lines := newLoader(map[string]string{"levels/cave.lua": cave})
	if err := l.Load("levels/cave.lua"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Map.Name() != "cave" || s.Map.Width() != 7 || s.Map.Height() != 3 {
		t.Errorf("map %s %dx%d", s.Map.Name(), s.Map.Width(), s.Map.Height())
	}
	if x, y := s.Player.Tile(); x != 1 || y != 1 || s.Player.Direction() != snd.DirRight {
		t.Errorf("player at %d,%d facing %d", x, y, s.Player.Direction())
	}
	events := s.Map.Events()
	if len(events) != 2 {
		t.Fatalf("%d events want 2", len(events))
	}
	drips := events[0]
	if src := drips.Source(); src == nil || src.File() != "bgs/Drips" || src.MaxDistance() != 4 {
		t.Errorf("drips source = %+v", src)
	}
	ghost := events[1]
	if src := ghost.Source(); src == nil || src.File() != "se/Whisper" {
		t.Errorf("ghost source = %+v", src)
	}
	if !s.Map.Passable(5, 1) || ghost.Direction() != snd.DirLeft {
		t.Errorf("ghost is not through or not turned")
	}
	if drips.Wanders() || !ghost.Wanders() {
		t.Errorf("wander flags drips=%v ghost=%v", drips.Wanders(), ghost.Wanders())
	}
	if len(*lines) != 1 || (*lines)[0] != "emit_bgm 1 Cave" {
		t.Errorf("exec lines = %v", *lines)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{`event { id = 1, x = 1, y = 1 }`, "event before map"},
		{`player { x = 1 }`, "no map"},
		{`map { name = "x" }`, "map needs rows"},
		{`map { rows = { "..." } } event { id = 1 } event { id = 1 }`, "already defined"},
		{`map {`, "level bad.lua"},
	}
	for _, tc := range tests {
		l, _, _ := newLoader(map[string]string{"bad.lua": tc.script})
		err := l.Load("bad.lua")
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("Load(%q) = %v want %q", tc.script, err, tc.want)
		}
	}
}

// duplicateID fails only after map and exec ran.
const duplicateID = `
map { name = "bad", rows = { "...." } }
event { id = 3, x = 1, y = 0 }
exec "emit_bgm 3 Bad"
event { id = 3, x = 2, y = 0 }
`

func TestFailedLoadKeepsLevel(t *testing.T) {
	l, s, lines := newLoader(map[string]string{
		"levels/cave.lua": cave,
		"bad.lua":         duplicateID,
	})
	if err := l.Load("levels/cave.lua"); err != nil {
		t.Fatal(err)
	}
	teardowns := 0
	s.AddTeardown(func() { teardowns++ })
	if err := l.Load("bad.lua"); err == nil || !strings.Contains(err.Error(), "already defined") {
		t.Fatalf("Load(bad.lua) = %v", err)
	}
	if teardowns != 0 {
		t.Errorf("failed script tore down the level")
	}
	if s.Map.Name() != "cave" || len(s.Map.Events()) != 2 {
		t.Errorf("level is %s with %d events want cave with 2", s.Map.Name(), len(s.Map.Events()))
	}
	if len(*lines) != 1 {
		t.Errorf("exec lines = %v", *lines)
	}
}

func TestLoadMissing(t *testing.T) {
	l, _, _ := newLoader(nil)
	if err := l.Load("levels/none.lua"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v", err)
	}
}
