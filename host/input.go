// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"emittance/cmd"
	"emittance/keys"
	kc "emittance/keycode"

	"github.com/gdamore/tcell/v2"
)

// HandleEvent routes a terminal key press. A terminal reports no key
// releases, so every press triggers its binding once.
func (h *Host) HandleEvent(ev *tcell.EventKey) {
	h.HandleKey(kc.FromEvent(ev))
}

func (h *Host) HandleKey(k kc.KeyCode) {
	if k == kc.NONE {
		return
	}
	switch h.dest {
	case keys.Console:
		h.consoleKey(k)
	default:
		h.gameKey(k)
	}
}

func (h *Host) Destination() keys.Destination {
	return h.dest
}

func (h *Host) gameKey(k kc.KeyCode) {
	switch k {
	case ':', '`', '~':
		h.dest = keys.Console
		return
	}
	if b, ok := h.binds.Binding(k); ok {
		h.cbuf.AddText(b + "\n")
	}
}

func (h *Host) consoleKey(k kc.KeyCode) {
	c := &h.console
	switch k {
	case kc.ESCAPE, '`', '~':
		h.dest = keys.Game
	case kc.ENTER:
		l := c.submit()
		c.Print("] " + l + "\n")
		h.cbuf.AddText(l + "\n")
	case kc.BACKSPACE, kc.DEL:
		c.backspace()
	case kc.UPARROW:
		c.historyUp()
	case kc.DOWNARROW:
		c.historyDown()
	case kc.TAB:
		names := append(h.commands.List(), cmd.List()...)
		c.complete(names)
	case kc.SPACE:
		c.typeRune(' ')
	default:
		if k > 32 && k < 127 {
			c.typeRune(rune(k))
		}
	}
}
