// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func open(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := InitWith(s); err != nil {
		t.Fatal(err)
	}
	s.SetSize(10, 3)
	t.Cleanup(Shutdown)
	return s
}

func TestDrawText(t *testing.T) {
	s := open(t)
	if end := DrawText(7, 1, tcell.StyleDefault, "hello"); end != 12 {
		t.Errorf("DrawText end = %d want 12", end)
	}
	EndRendering()
	for x, want := range map[int]rune{7: 'h', 8: 'e', 9: 'l'} {
		if r, _, _, _ := s.GetContent(x, 1); r != want {
			t.Errorf("cell %d,1 = %q want %q", x, r, want)
		}
	}
	SetCell(-1, 0, 'x', tcell.StyleDefault)
	SetCell(0, 5, 'x', tcell.StyleDefault)
}

func TestDoubleInit(t *testing.T) {
	open(t)
	if err := InitWith(tcell.NewSimulationScreen("UTF-8")); err == nil {
		t.Errorf("second InitWith succeeded")
	}
}

func TestEvents(t *testing.T) {
	s := open(t)
	s.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-Events():
			if k, ok := ev.(*tcell.EventKey); ok {
				if k.Rune() != 'c' {
					t.Errorf("rune = %q want 'c'", k.Rune())
				}
				return
			}
		case <-timeout:
			t.Fatalf("no key event")
		}
	}
}
