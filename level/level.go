// SPDX-License-Identifier: GPL-2.0-or-later

// Package level loads Lua level scripts into a scene. A script calls
//
//	map { name = "cave", rows = { "#####", "#...#", "#####" } }
//	player { x = 1, y = 1, direction = 8 }
//	event { id = 1, name = "drips", x = 3, y = 1,
//	        pages = { { "<s_emittance: bgs/Drips>", "<s_e_radius: 4>" } } }
//	exec "emit_bgm 1 Cave"
//
// map must come before any event. The script only describes the level,
// the previous one is replaced once the whole script ran without error.
package level

import (
	"bytes"

	"emittance/snd"
	"emittance/world"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Loader runs level scripts against one scene.
type Loader struct {
	scene *world.Scene
	read  func(name string) ([]byte, error)
	exec  func(text string)
}

// NewLoader creates a loader reading scripts with read. Command lines
// passed to exec() in a script are handed to exec.
func NewLoader(s *world.Scene, read func(string) ([]byte, error), exec func(string)) *Loader {
	return &Loader{
		scene: s,
		read:  read,
		exec:  exec,
	}
}

type playerDef struct {
	x, y      int
	direction snd.Direction
	speed     int
}

type eventDef struct {
	id, x, y  int
	name      string
	pages     [][]string
	through   bool
	wander    bool
	direction snd.Direction
}

// run collects what a script defines.
type run struct {
	*Loader
	haveMap bool
	name    string
	rows    []string
	player  *playerDef
	events  []eventDef
	ids     map[int]bool
	lines   []string
}

// Load runs the script name.
func (l *Loader) Load(name string) error {
	b, err := l.read(name)
	if err != nil {
		return errors.Wrapf(err, "level %s", name)
	}
	return l.Run(name, b)
}

// Run executes a script held in memory, name is used in error messages.
func (l *Loader) Run(name string, script []byte) error {
	L := lua.NewState()
	defer L.Close()
	r := &run{Loader: l, ids: make(map[int]bool)}
	L.SetGlobal("map", L.NewFunction(r.setupMap))
	L.SetGlobal("player", L.NewFunction(r.setupPlayer))
	L.SetGlobal("event", L.NewFunction(r.addEvent))
	L.SetGlobal("exec", L.NewFunction(r.execText))

	fn, err := L.Load(bytes.NewReader(script), name)
	if err != nil {
		return errors.Wrapf(err, "level %s", name)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return errors.Wrapf(err, "level %s", name)
	}
	if !r.haveMap {
		return errors.Errorf("level %s: no map", name)
	}
	return errors.Wrapf(r.apply(), "level %s", name)
}

// apply replaces the level of the scene with the collected one.
func (r *run) apply() error {
	r.scene.Map.Setup(r.name, r.rows)
	if p := r.player; p != nil {
		pl := r.scene.Player
		pl.Locate(p.x, p.y)
		pl.SetDirection(p.direction)
		pl.SetSpeed(p.speed)
	}
	for _, d := range r.events {
		e, err := r.scene.Map.AddEvent(d.id, d.name, d.x, d.y, d.pages)
		if err != nil {
			return err
		}
		e.SetThrough(d.through)
		e.SetWander(d.wander)
		if d.direction != 0 {
			e.SetDirection(d.direction)
		}
	}
	for _, l := range r.lines {
		r.exec(l)
	}
	return nil
}

func field(t *lua.LTable, name string) lua.LValue {
	return t.RawGetString(name)
}

func intField(t *lua.LTable, name string, def int) int {
	v := field(t, name)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

func stringField(t *lua.LTable, name string) string {
	if s, ok := field(t, name).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func boolField(t *lua.LTable, name string) bool {
	return lua.LVAsBool(field(t, name))
}

// stringList converts a Lua sequence of strings, other values are skipped.
func stringList(v lua.LValue) []string {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	var r []string
	for i := 1; i <= t.Len(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			r = append(r, string(s))
		}
	}
	return r
}

func (r *run) setupMap(L *lua.LState) int {
	t := L.CheckTable(1)
	rows := stringList(field(t, "rows"))
	if len(rows) == 0 {
		L.ArgError(1, "map needs rows")
		return 0
	}
	r.name = stringField(t, "name")
	r.rows = rows
	r.haveMap = true
	return 0
}

func (r *run) setupPlayer(L *lua.LState) int {
	t := L.CheckTable(1)
	r.player = &playerDef{
		x:         intField(t, "x", 0),
		y:         intField(t, "y", 0),
		direction: snd.Direction(intField(t, "direction", int(snd.DirDown))),
		speed:     intField(t, "speed", world.NormalSpeed),
	}
	return 0
}

func (r *run) addEvent(L *lua.LState) int {
	if !r.haveMap {
		L.RaiseError("event before map")
		return 0
	}
	t := L.CheckTable(1)
	var pages [][]string
	if p, ok := field(t, "pages").(*lua.LTable); ok {
		for i := 1; i <= p.Len(); i++ {
			pages = append(pages, stringList(p.RawGetInt(i)))
		}
	} else if c := stringList(field(t, "comments")); c != nil {
		pages = [][]string{c}
	}
	id := intField(t, "id", 0)
	if id <= 0 {
		L.RaiseError("event id %d must be positive", id)
		return 0
	}
	if r.ids[id] {
		L.RaiseError("event %d already defined", id)
		return 0
	}
	r.ids[id] = true
	r.events = append(r.events, eventDef{
		id:        id,
		name:      stringField(t, "name"),
		x:         intField(t, "x", 0),
		y:         intField(t, "y", 0),
		pages:     pages,
		through:   boolField(t, "through"),
		wander:    boolField(t, "wander"),
		direction: snd.Direction(intField(t, "direction", 0)),
	})
	return 0
}

func (r *run) execText(L *lua.LState) int {
	r.lines = append(r.lines, L.CheckString(1))
	return 0
}
