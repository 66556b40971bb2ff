// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"fmt"

	"emittance/keys"
	"emittance/snd"
	"emittance/window"
	"emittance/world"

	"github.com/gdamore/tcell/v2"
)

const (
	notifyLines  = 3
	consoleLines = 10
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEvent   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEmitter = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleText    = tcell.StyleDefault
)

func facingGlyph(d snd.Direction) rune {
	switch d {
	case snd.DirDown:
		return 'v'
	case snd.DirLeft:
		return '<'
	case snd.DirRight:
		return '>'
	}
	return '^'
}

func facingName(d snd.Direction) string {
	switch d {
	case snd.DirDown:
		return "S"
	case snd.DirLeft:
		return "W"
	case snd.DirRight:
		return "E"
	}
	return "N"
}

// viewOffset scrolls a map of size m over a screen of size s so that p
// stays centered where possible.
func viewOffset(p, m, s int) int {
	if m <= s {
		return 0
	}
	o := p - s/2
	if o < 0 {
		return 0
	}
	if o > m-s {
		return m - s
	}
	return o
}

// Render draws the map, the status line and the console.
func (h *Host) Render() {
	window.Clear()
	w, sh := window.Size()
	text := notifyLines
	if h.dest == keys.Console {
		text = consoleLines
	}
	mapRows := sh - text - 1
	if h.scene != nil && mapRows > 0 {
		h.drawMap(w, mapRows)
		h.drawStatus(w, mapRows)
	}
	h.drawConsole(sh, text)
	window.EndRendering()
}

func (h *Host) drawMap(w, rows int) {
	m := h.scene.Map
	px, py := h.scene.Player.Tile()
	ox := viewOffset(px, m.Width(), w)
	oy := viewOffset(py, m.Height(), rows)
	for y := 0; y < rows && y+oy < m.Height(); y++ {
		for x := 0; x < w && x+ox < m.Width(); x++ {
			switch m.Tile(x+ox, y+oy) {
			case world.TileWall:
				window.SetCell(x, y, '#', styleWall)
			default:
				window.SetCell(x, y, '.', styleFloor)
			}
		}
	}
	for _, e := range m.Events() {
		ex, ey := e.Tile()
		r, st := 'o', styleEvent
		if e.Source() != nil {
			r, st = '*', styleEmitter
		}
		if e == h.selected {
			st = st.Underline(true)
		}
		if ex-ox < w && ey-oy < rows {
			window.SetCell(ex-ox, ey-oy, r, st)
		}
	}
	if py-oy < rows {
		window.SetCell(px-ox, py-oy, facingGlyph(h.scene.Player.Direction()), stylePlayer)
	}
}

func (h *Host) drawStatus(w, y int) {
	reg := h.engine.Registry()
	playing := 0
	reg.Each(func(i snd.Info) {
		if i.Playing {
			playing++
		}
	})
	px, py := h.scene.Player.Tile()
	s := fmt.Sprintf(" %s  %d,%d %s  voices %d/%d", h.scene.Map.Name(), px, py,
		facingName(h.scene.Player.Direction()), playing, reg.Len())
	if e, ok := h.scene.Nearest(nearestRange, true); ok {
		s += "  near " + e.Name()
	}
	for len(s) < w {
		s += " "
	}
	window.DrawText(0, y, styleStatus, s)
}

func (h *Host) drawConsole(sh, n int) {
	top := sh - n
	if h.dest == keys.Console {
		lines := h.console.Last(n - 1)
		for i, l := range lines {
			window.DrawText(0, top+n-1-len(lines)+i, styleText, l)
		}
		end := window.DrawText(0, sh-1, styleText, "] "+h.console.Input())
		window.ShowCursor(end, sh-1)
		return
	}
	window.HideCursor()
	lines := h.console.Last(n)
	for i, l := range lines {
		window.DrawText(0, top+n-len(lines)+i, styleText, l)
	}
}
