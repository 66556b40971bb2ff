// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"emittance/tags"
)

// Event is a map object with numbered pages of comment lines. The active
// page decides which sound the event emits.
type Event struct {
	Character
	id     int
	name   string
	pages  [][]string
	page   int
	wander bool
}

func (e *Event) ID() int {
	return e.id
}

func (e *Event) Name() string {
	return e.name
}

// Page returns the active page or -1.
func (e *Event) Page() int {
	return e.page
}

func (e *Event) Comments() string {
	if e.page < 0 || e.page >= len(e.pages) {
		return ""
	}
	return tags.Join(e.pages[e.page])
}

// SetPage activates page i. An index without page leaves the event
// without page and silent.
func (e *Event) SetPage(i int) {
	if i < 0 || i >= len(e.pages) {
		i = -1
	}
	e.page = i
	e.setupPage()
}

// SetWander lets the event take random steps when it stands still.
func (e *Event) SetWander(w bool) {
	e.wander = w
}

func (e *Event) Wanders() bool {
	return e.wander
}

// HasSound reports whether the event emits sound or its page asks for it.
func (e *Event) HasSound() bool {
	if e.Source() != nil {
		return true
	}
	_, ok := tags.Parse(e.Comments())
	return ok
}

// Refresh sets up the active page again.
func (e *Event) Refresh() {
	e.setupPage()
}

func (e *Event) setupPage() {
	e.ClearSoundEmittance()
	t, ok := tags.Parse(e.Comments())
	if !ok {
		return
	}
	e.SetSoundEmittance(t.File, t.Radius, t.Volume, t.Pitch)
}
