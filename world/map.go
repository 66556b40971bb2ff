// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"sort"

	"emittance/snd"

	"github.com/pkg/errors"
)

const (
	TileFloor = '.'
	TileWall  = '#'
)

// Map is a grid of tiles with the events of the current level.
type Map struct {
	name     string
	rows     []string
	width    int
	events   []*Event // sorted by id
	byID     map[int]*Event
	registry *snd.Registry
	teardown []func()
}

func NewMap(r *snd.Registry) *Map {
	return &Map{
		byID:     make(map[int]*Event),
		registry: r,
	}
}

func (m *Map) Registry() *snd.Registry {
	return m.registry
}

// AddTeardown registers f to run at the start of every Setup.
func (m *Map) AddTeardown(f func()) {
	m.teardown = append(m.teardown, f)
}

// Setup replaces the map. Teardown hooks run before anything of the new
// map exists. Rows shorter than the widest one are padded with walls.
func (m *Map) Setup(name string, rows []string) {
	for _, f := range m.teardown {
		f()
	}
	m.name = name
	m.width = 0
	for _, r := range rows {
		m.width = max(m.width, len(r))
	}
	m.rows = rows
	m.events = nil
	clear(m.byID)
}

func (m *Map) Name() string {
	return m.name
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return len(m.rows)
}

func (m *Map) Tile(x, y int) byte {
	if y < 0 || y >= len(m.rows) || x < 0 || x >= len(m.rows[y]) {
		return TileWall
	}
	return m.rows[y][x]
}

// Passable reports whether a character may enter x,y.
func (m *Map) Passable(x, y int) bool {
	if m.Tile(x, y) == TileWall {
		return false
	}
	for _, e := range m.events {
		if ex, ey := e.Tile(); ex == x && ey == y && !e.through {
			return false
		}
	}
	return true
}

// AddEvent places a new event on the map and activates its first page.
func (m *Map) AddEvent(id int, name string, x, y int, pages [][]string) (*Event, error) {
	if id <= 0 {
		return nil, errors.Errorf("event id %d must be positive", id)
	}
	if _, ok := m.byID[id]; ok {
		return nil, errors.Errorf("event %d already defined", id)
	}
	e := &Event{
		Character: newCharacter(m, x, y),
		id:        id,
		name:      name,
		pages:     pages,
	}
	m.byID[id] = e
	i := sort.Search(len(m.events), func(i int) bool { return m.events[i].id > id })
	m.events = append(m.events, nil)
	copy(m.events[i+1:], m.events[i:])
	m.events[i] = e
	e.SetPage(0)
	return e, nil
}

func (m *Map) Event(id int) (*Event, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// Events returns all events ordered by id.
func (m *Map) Events() []*Event {
	return m.events
}

func (m *Map) EventAt(x, y int) (*Event, bool) {
	for _, e := range m.events {
		if ex, ey := e.Tile(); ex == x && ey == y {
			return e, true
		}
	}
	return nil, false
}
