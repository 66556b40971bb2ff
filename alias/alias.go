// SPDX-License-Identifier: GPL-2.0-or-later

package alias

import (
	"sort"
	"strings"

	"emittance/cbuf"
	"emittance/cmd"
	"emittance/conlog"
)

// Aliases expands user defined names into command text.
type Aliases struct {
	m map[string]string
}

func New() *Aliases {
	return &Aliases{
		m: make(map[string]string),
	}
}

// Register adds alias, unalias and unaliasall to c.
func (al *Aliases) Register(c *cmd.Commands) error {
	if err := c.Add("alias", al.alias); err != nil {
		return err
	}
	if err := c.Add("unalias", al.unalias); err != nil {
		return err
	}
	return c.Add("unaliasall", al.unaliasAll)
}

func (al *Aliases) alias(a cmd.Arguments, _ int) error {
	args := a.Args()[1:]
	switch len(args) {
	case 0:
		al.list()
	case 1:
		al.print(args[0].String())
	default:
		al.set(args[0].String(), args[1:])
	}
	return nil
}

func (al *Aliases) list() {
	if len(al.m) == 0 {
		conlog.SafePrintf("no alias commands found\n")
		return
	}
	names := make([]string, 0, len(al.m))
	for k := range al.m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		// each alias value ends with a '\n'
		conlog.SafePrintf("  %s: %s", k, al.m[k])
	}
	conlog.SafePrintf("%v alias command(s)\n", len(al.m))
}

func (al *Aliases) print(name string) {
	if v, ok := al.m[name]; ok {
		conlog.Printf("  %s: %s", name, v)
	}
}

func (al *Aliases) set(name string, args []cmd.QArg) {
	// the parts have '"' already removed
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	al.m[name] = strings.TrimSpace(strings.Join(parts, " ")) + "\n"
}

func (al *Aliases) unalias(a cmd.Arguments, _ int) error {
	if a.Argc() != 2 {
		conlog.Printf("unalias <name> : delete alias\n")
		return nil
	}
	name := a.Argv(1).String()
	if _, ok := al.m[name]; !ok {
		conlog.Printf("No alias named %s\n", name)
		return nil
	}
	delete(al.m, name)
	return nil
}

func (al *Aliases) unaliasAll(_ cmd.Arguments, _ int) error {
	clear(al.m)
	return nil
}

func (al *Aliases) Get(name string) (string, bool) {
	a, ok := al.m[name]
	return a, ok
}

// Execute returns the executor running aliases. The expanded text is put
// in front of the buffer and keeps the caller of the alias.
func (al *Aliases) Execute() cbuf.Efunc {
	return func(c *cbuf.CommandBuffer, a cmd.Arguments, caller int) (bool, error) {
		v, ok := al.Get(a.Argv(0).String())
		if !ok {
			return false, nil
		}
		c.InsertTextFrom(v, caller)
		return true, nil
	}
}
