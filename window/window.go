// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the terminal screen the map is drawn on.
package window

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var (
	screen      tcell.Screen
	events      chan tcell.Event
	skipUpdates bool
)

// Init opens the controlling terminal.
func Init() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "new screen")
	}
	return InitWith(s)
}

// InitWith uses s as screen, tests pass a simulation screen.
func InitWith(s tcell.Screen) error {
	if screen != nil {
		return errors.New("window already open")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "screen init")
	}
	s.HideCursor()
	s.EnableFocus()
	s.Clear()
	screen = s
	events = make(chan tcell.Event, 64)
	go poll(s, events)
	return nil
}

func poll(s tcell.Screen, c chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			// screen finalized
			close(c)
			return
		}
		c <- ev
	}
}

func Get() tcell.Screen {
	return screen
}

// Events delivers key and resize events. It is closed by Shutdown.
func Events() <-chan tcell.Event {
	return events
}

func Size() (int, int) {
	if screen == nil {
		return 0, 0
	}
	return screen.Size()
}

func Shutdown() {
	if screen == nil {
		return
	}
	screen.Fini()
	screen = nil
}

// SetSkipUpdates stops EndRendering from touching the terminal, used while
// the process is suspended.
func SetSkipUpdates(skip bool) {
	skipUpdates = skip
}

func Clear() {
	if screen != nil {
		screen.Clear()
	}
}

// SetCell draws r at x,y. Cells outside the screen are ignored.
func SetCell(x, y int, r rune, style tcell.Style) {
	if screen == nil {
		return
	}
	w, h := screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}

// DrawText writes s starting at x,y and returns the column after it.
// Text is clipped at the right border.
func DrawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		SetCell(x, y, r, style)
		x++
	}
	return x
}

func ShowCursor(x, y int) {
	if screen != nil {
		screen.ShowCursor(x, y)
	}
}

func HideCursor() {
	if screen != nil {
		screen.HideCursor()
	}
}

// EndRendering pushes the drawn frame to the terminal.
func EndRendering() {
	if screen == nil || skipUpdates {
		return
	}
	screen.Show()
}

// Resized redraws everything after the terminal changed its size.
func Resized() {
	if screen != nil {
		screen.Sync()
	}
}
