// SPDX-License-Identifier: GPL-2.0-or-later

package keys

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"emittance/cmd"
	"emittance/conlog"
	kc "emittance/keycode"

	"github.com/pkg/errors"
)

// Destination is where key presses go.
type Destination byte

const (
	Game = Destination(iota)
	Console
)

// Bindings maps keys to command text.
type Bindings struct {
	m map[kc.KeyCode]string
}

func New() *Bindings {
	return &Bindings{
		m: make(map[kc.KeyCode]string),
	}
}

// SetDefaults installs the walking and facing binds.
func (b *Bindings) SetDefaults() {
	b.m[kc.UPARROW] = "walk 8"
	b.m[kc.DOWNARROW] = "walk 2"
	b.m[kc.LEFTARROW] = "walk 4"
	b.m[kc.RIGHTARROW] = "walk 6"
	b.m['w'] = "face 8"
	b.m['s'] = "face 2"
	b.m['a'] = "face 4"
	b.m['d'] = "face 6"
	b.m['c'] = "toggle_nearest"
	b.m['q'] = "quit"
	b.m[kc.ESCAPE] = "quit"
}

// Binding returns the command bound to k, if any.
func (b *Bindings) Binding(k kc.KeyCode) (string, bool) {
	s, ok := b.m[k]
	return s, ok
}

func (b *Bindings) Set(k kc.KeyCode, command string) {
	if command == "" {
		delete(b.m, k)
		return
	}
	b.m[k] = command
}

// Register adds bind, unbind, unbindall and bindlist to c.
func (b *Bindings) Register(c *cmd.Commands) error {
	if err := c.Add("bind", b.bind); err != nil {
		return err
	}
	if err := c.Add("unbind", b.unbind); err != nil {
		return err
	}
	if err := c.Add("unbindall", b.unbindAll); err != nil {
		return err
	}
	return c.Add("bindlist", b.list)
}

func (b *Bindings) bind(a cmd.Arguments, _ int) error {
	args := a.Args()
	if len(args) < 2 {
		conlog.Printf("bind <key> [command] : attach a command to a key\n")
		return nil
	}
	k := kc.StringToKey(args[1].String())
	if k == kc.NONE {
		return errors.Errorf("%q isn't a valid key", args[1].String())
	}
	if len(args) == 2 {
		if s, ok := b.m[k]; ok {
			conlog.Printf("%q = %q\n", args[1].String(), s)
		} else {
			conlog.Printf("%q is not bound\n", args[1].String())
		}
		return nil
	}
	parts := make([]string, 0, len(args)-2)
	for _, p := range args[2:] {
		parts = append(parts, p.String())
	}
	b.Set(k, strings.Join(parts, " "))
	return nil
}

func (b *Bindings) unbind(a cmd.Arguments, _ int) error {
	if a.Argc() != 2 {
		conlog.Printf("unbind <key> : remove commands from a key\n")
		return nil
	}
	k := kc.StringToKey(a.Argv(1).String())
	if k == kc.NONE {
		return errors.Errorf("%q isn't a valid key", a.Argv(1).String())
	}
	delete(b.m, k)
	return nil
}

func (b *Bindings) unbindAll(_ cmd.Arguments, _ int) error {
	b.m = make(map[kc.KeyCode]string)
	return nil
}

func (b *Bindings) list(_ cmd.Arguments, _ int) error {
	names := make([]string, 0, len(b.m))
	for k, v := range b.m {
		names = append(names, kc.KeyToString(k)+" \""+v+"\"")
	}
	sort.Strings(names)
	for _, n := range names {
		conlog.SafePrintf("  %s\n", n)
	}
	conlog.SafePrintf("%v bindings\n", len(names))
	return nil
}

// Write stores all bindings as console lines, after an unbindall.
func (b *Bindings) Write(w io.Writer) error {
	lines := make([]string, 0, len(b.m)+1)
	for k, v := range b.m {
		name := kc.KeyToString(k)
		if k == ';' {
			name = "SEMICOLON"
		}
		lines = append(lines, fmt.Sprintf("bind \"%s\" \"%s\"\n", name, v))
	}
	sort.Strings(lines)
	if _, err := io.WriteString(w, "unbindall\n"+strings.Join(lines, "")); err != nil {
		return errors.Wrap(err, "write bindings")
	}
	return nil
}
