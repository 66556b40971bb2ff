// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"time"

	"emittance/conlog"
	"emittance/gametime"
	"emittance/snd/speaker"
	"emittance/window"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/mainthread/v2"
)

// Run drives frames until quit or until the screen closes. Input, world
// updates and drawing all run on the main thread, Run itself must be
// called from inside mainthread.Run.
func (h *Host) Run(gt *gametime.GameTime) {
	events := window.Events()
	timer := time.NewTimer(0)
	defer timer.Stop()
	for !h.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			mainthread.Call(func() { h.handle(ev) })
		case <-timer.C:
			if gt.UpdateTime() {
				gt.FrameIncrease()
				mainthread.Call(func() {
					h.Frame()
					h.Render()
				})
			}
			timer.Reset(max(gt.Wait(), time.Millisecond))
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			h.quit = true
			return
		}
		h.HandleEvent(ev)
	case *tcell.EventResize:
		window.Resized()
	case *tcell.EventFocus:
		h.focus(ev.Focused)
	}
}

// suspendAudio halts the sound device while the terminal is in the
// background.
func suspendAudio(focused bool) {
	f := speaker.Suspend
	if focused {
		f = speaker.Resume
	}
	if err := f(); err != nil {
		conlog.Printf("%v\n", err)
	}
}
