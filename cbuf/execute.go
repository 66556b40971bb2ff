// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"log"

	"emittance/cmd"
	"emittance/conlog"
)

// Efunc tries to handle a command line. It reports whether it did.
type Efunc func(c *CommandBuffer, a cmd.Arguments, caller int) (bool, error)

type executors []Efunc

func (ex *executors) execute(c *CommandBuffer, a cmd.Arguments, caller int) error {
	args := a.Args()
	if len(args) == 0 {
		return nil // no tokens
	}
	for _, e := range *ex {
		if ok, err := e(c, a, caller); err != nil {
			return err
		} else if ok {
			return nil
		}
	}

	name := args[0].String()
	log.Printf("Unknown command \"%s\"", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}

// Commands adapts a command table to an executor.
func Commands(t *cmd.Commands) Efunc {
	return func(_ *CommandBuffer, a cmd.Arguments, caller int) (bool, error) {
		return t.Execute(a, caller)
	}
}

// Exec handles "exec <file>" by queueing the file contents in front of
// the remaining buffer.
func Exec(read func(name string) ([]byte, error)) Efunc {
	return func(c *CommandBuffer, a cmd.Arguments, _ int) (bool, error) {
		if a.Argv(0).String() != "exec" {
			return false, nil
		}
		if a.Argc() != 2 {
			conlog.Printf("exec <filename> : execute a script file\n")
			return true, nil
		}
		name := a.Argv(1).String()
		b, err := read(name)
		if err != nil {
			conlog.Printf("couldn't exec %s\n", name)
			return true, nil
		}
		conlog.Printf("execing %s\n", name)
		c.InsertText(string(b))
		return true, nil
	}
}
