// SPDX-License-Identifier: GPL-2.0-or-later

package keycode

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToString(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, ";"},
		{0x41, "A"},
		{0x61, "a"},
		{0x7F, "BACKSPACE"},
		{0x80, "UPARROW"},
	}
	for _, test := range tests {
		if got := KeyToString(test.key); got != test.str {
			t.Errorf("KeyToString(%d) = %s; want %s", test.key, got, test.str)
		}
	}
}

func TestStringToKey(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, ";"},
		{0x41, "A"},
		{0x60, "`"},
		{0x61, "a"},
		{0x7E, "~"},
		{0x7F, "BACKSPACE"},
		{0x80, "UPARROW"},
	}
	for _, test := range tests {
		if got := StringToKey(test.str); got != test.key {
			t.Errorf("KeyToString(%s) = %d; want %d", test.str, got, test.key)
		}
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyCode
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), UPARROW},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), 'c'},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), SPACE},
		{tcell.NewEventKey(tcell.KeyRune, 'ä', tcell.ModNone), NONE},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ENTER},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), NONE},
	}
	for _, test := range tests {
		if got := FromEvent(test.ev); got != test.want {
			t.Errorf("FromEvent(%v) = %d; want %d", test.ev.Name(), got, test.want)
		}
	}
}
