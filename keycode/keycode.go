// SPDX-License-Identifier: GPL-2.0-or-later

package keycode

import (
	"github.com/gdamore/tcell/v2"
)

// KeyCode is a printable ASCII character or one of the named keys below.
type KeyCode int

const (
	TAB        KeyCode = 9
	ENTER      KeyCode = 13
	ESCAPE     KeyCode = 27
	SPACE      KeyCode = 32
	BACKSPACE  KeyCode = 127
	UPARROW    KeyCode = 128
	DOWNARROW  KeyCode = 129
	LEFTARROW  KeyCode = 130
	RIGHTARROW KeyCode = 131
	F1         KeyCode = 135
	F2         KeyCode = 136
	F3         KeyCode = 137
	F4         KeyCode = 138
	F5         KeyCode = 139
	F6         KeyCode = 140
	F7         KeyCode = 141
	F8         KeyCode = 142
	F9         KeyCode = 143
	F10        KeyCode = 144
	F11        KeyCode = 145
	F12        KeyCode = 146
	INS        KeyCode = 147
	DEL        KeyCode = 148
	PGDN       KeyCode = 149
	PGUP       KeyCode = 150
	HOME       KeyCode = 151
	END        KeyCode = 152
	PAUSE      KeyCode = 255
	NONE       KeyCode = -1
)

var (
	s2k = map[string]KeyCode{
		"TAB":        TAB,
		"ENTER":      ENTER,
		"ESCAPE":     ESCAPE,
		"SPACE":      SPACE,
		"BACKSPACE":  BACKSPACE,
		"UPARROW":    UPARROW,
		"DOWNARROW":  DOWNARROW,
		"LEFTARROW":  LEFTARROW,
		"RIGHTARROW": RIGHTARROW,

		"F1":  F1,
		"F2":  F2,
		"F3":  F3,
		"F4":  F4,
		"F5":  F5,
		"F6":  F6,
		"F7":  F7,
		"F8":  F8,
		"F9":  F9,
		"F10": F10,
		"F11": F11,
		"F12": F12,

		"INS":   INS,
		"DEL":   DEL,
		"PGDN":  PGDN,
		"PGUP":  PGUP,
		"HOME":  HOME,
		"END":   END,
		"PAUSE": PAUSE,

		"SEMICOLON": ';', // because a raw semicolon seperates commands
		"BACKQUOTE": '`',
		"TILDE":     '~',
	}
	k2s = reverseMap(s2k)

	fromTcell = map[tcell.Key]KeyCode{
		tcell.KeyTab:        TAB,
		tcell.KeyEnter:      ENTER,
		tcell.KeyEscape:     ESCAPE,
		tcell.KeyBackspace:  BACKSPACE,
		tcell.KeyBackspace2: BACKSPACE,
		tcell.KeyUp:         UPARROW,
		tcell.KeyDown:       DOWNARROW,
		tcell.KeyLeft:       LEFTARROW,
		tcell.KeyRight:      RIGHTARROW,
		tcell.KeyF1:         F1,
		tcell.KeyF2:         F2,
		tcell.KeyF3:         F3,
		tcell.KeyF4:         F4,
		tcell.KeyF5:         F5,
		tcell.KeyF6:         F6,
		tcell.KeyF7:         F7,
		tcell.KeyF8:         F8,
		tcell.KeyF9:         F9,
		tcell.KeyF10:        F10,
		tcell.KeyF11:        F11,
		tcell.KeyF12:        F12,
		tcell.KeyInsert:     INS,
		tcell.KeyDelete:     DEL,
		tcell.KeyPgDn:       PGDN,
		tcell.KeyPgUp:       PGUP,
		tcell.KeyHome:       HOME,
		tcell.KeyEnd:        END,
		tcell.KeyPause:      PAUSE,
	}
)

func reverseMap(m map[string]KeyCode) map[KeyCode]string {
	r := make(map[KeyCode]string)
	for k, v := range m {
		r[v] = k
	}
	return r
}

func KeyToString(k KeyCode) string {
	if k == NONE {
		return "<KEY NOT FOUND>"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	if s, ok := k2s[k]; ok {
		return s
	}
	return "<UNKNOWN KEYNUM>"
}

func StringToKey(s string) KeyCode {
	if len(s) == 0 {
		return NONE
	}
	if len(s) == 1 {
		return KeyCode(s[0])
	}
	if v, ok := s2k[s]; ok {
		return v
	}
	return NONE
}

// FromEvent translates a terminal key press. Keys without a KeyCode
// return NONE.
func FromEvent(ev *tcell.EventKey) KeyCode {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return SPACE
		}
		if r > 32 && r < 127 {
			return KeyCode(r)
		}
		return NONE
	}
	if k, ok := fromTcell[ev.Key()]; ok {
		return k
	}
	return NONE
}
