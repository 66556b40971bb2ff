// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"emittance/cmd"
	"emittance/conlog"

	"github.com/pkg/errors"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE    flag = 0
	ARCHIVE flag = 1
	NOTIFY  flag = 1 << 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	notify   bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
	// bounded cvars clamp every value into [min, max]
	bounded  bool
	min, max float32
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) Notify() bool {
	return cv.notify
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

// SetRange clamps the current and all later values into [min, max].
func (cv *Cvar) SetRange(min, max float32) {
	cv.bounded = true
	cv.min, cv.max = min, max
	cv.SetByString(cv.stringValue)
}

func format(v float32) string {
	if float32(int(v)) == v {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	pf, _ := strconv.ParseFloat(s, 32)
	v := float32(pf)
	if cv.bounded && (v < cv.min || v > cv.max) {
		v = min(max(v, cv.min), cv.max)
		s = format(v)
	}
	cv.stringValue = s
	cv.value = v
	if cv.notify {
		conlog.Printf("\"%s\" changed to \"%s\"\n", cv.name, s)
	}
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	cv.SetByString(format(value))
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	pos := len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[strings.ToLower(name)] = cv
	cv.id = pos
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := Get(name); ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}
	if cmd.Exists(name) {
		return nil, errors.Errorf("can't register variable %s, is a command", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&NOTIFY != 0 {
		cv.notify = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}

	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute handles a line of the form "<cvar> [value]". It reports false
// if the first argument does not name a cvar.
func Execute(a cmd.Arguments, _ int) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("inc", inc))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("resetall", resetAll))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("toggle", toggle))
}

func set(a cmd.Arguments, _ int) error {
	args := a.Args()[1:]
	switch {
	case len(args) >= 2:
		if cmd.Exists(args[0].String()) {
			conlog.Printf("conflict with command\n")
			return nil
		}
		if cv, ok := Get(args[0].String()); ok {
			cv.SetByString(args[1].String())
		} else {
			cv := create(args[0].String(), args[1].String())
			cv.user = true
		}
	default:
		conlog.Printf("set <cvar> <value>\n")
	}
	return nil
}

func toggle(a cmd.Arguments, _ int) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Toggle()
		} else {
			conlog.Printf("toggle: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
	return nil
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(a cmd.Arguments, _ int) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		incr(args[0].String(), 1)
	case 2:
		incr(args[0].String(), args[1].Float32())
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
	return nil
}

func reset(a cmd.Arguments, _ int) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Reset()
		} else {
			conlog.Printf("reset: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
	return nil
}

func resetAll(_ cmd.Arguments, _ int) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

// sorted returns the cvars starting with prefix ordered by name.
func sorted(prefix string) []*Cvar {
	cvars := make([]*Cvar, 0, len(cvarArray))
	for _, cv := range All() {
		if strings.HasPrefix(cv.Name(), prefix) {
			cvars = append(cvars, cv)
		}
	}
	sort.Slice(cvars, func(i, j int) bool { return cvars[i].name < cvars[j].name })
	return cvars
}

// WriteArchived writes a console line for every archived cvar so a
// config file can restore them.
func WriteArchived(w io.Writer) error {
	for _, cv := range sorted("") {
		if !cv.archive {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s \"%s\"\n", cv.name, cv.stringValue); err != nil {
			return errors.Wrap(err, "write cvars")
		}
	}
	return nil
}

func list(a cmd.Arguments, _ int) error {
	cvars := sorted(a.Argv(1).String())
	for _, v := range cvars {
		archive := " "
		if v.Archive() {
			archive = "*"
		}
		if v.String() != v.defaultValue {
			conlog.SafePrintf("%s %s \"%s\" (default \"%s\")\n", archive, v.Name(), v.String(), v.defaultValue)
			continue
		}
		conlog.SafePrintf("%s %s \"%s\"\n", archive, v.Name(), v.String())
	}
	conlog.SafePrintf("%v cvars\n", len(cvars))
	return nil
}
