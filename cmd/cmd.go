// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"emittance/conlog"

	"github.com/pkg/errors"
)

// QFunc runs a command. caller is the id of the map event that issued the
// command, 0 when it came from the console, a config file or a level script.
type QFunc func(args Arguments, caller int) error

type Commands map[string]QFunc

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It reports false
// if there is no such command.
func (c *Commands) Execute(a Arguments, caller int) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a, caller); err != nil {
			return false, errors.Wrap(err, name)
		}
		return true, nil
	}
	return false, nil
}

func (c *Commands) printList(a Arguments, _ int) error {
	part := a.Argv(1).String()
	count := 0
	for _, n := range c.List() {
		if strings.HasPrefix(n, part) {
			conlog.SafePrintf("  %s\n", n)
			count++
		}
	}
	if part == "" {
		conlog.SafePrintf("%v commands\n", count)
	} else {
		conlog.SafePrintf("%v commands beginning with \"%v\"\n", count, part)
	}
	return nil
}

var (
	commands = make(Commands)
)

func init() {
	Must(commands.Add("cmdlist", commands.printList))
}

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func AddCommand(name string, f QFunc) error {
	return commands.Add(name, f)
}

func Exists(cmdName string) bool {
	return commands.Exists(cmdName)
}

func Execute(a Arguments, caller int) (bool, error) {
	return commands.Execute(a, caller)
}

func List() []string {
	return commands.List()
}
