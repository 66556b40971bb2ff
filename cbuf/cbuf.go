// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"emittance/cmd"
)

type line struct {
	text   string
	caller int
}

// CommandBuffer queues command text and executes it one frame at a time.
// A "wait" command defers everything after it to the next Execute.
type CommandBuffer struct {
	lines     []line
	wait      bool
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// AddText appends text issued by the console or a script.
func (c *CommandBuffer) AddText(text string) {
	c.AddTextFrom(text, 0)
}

// AddTextFrom appends text issued by the map event with id caller.
func (c *CommandBuffer) AddTextFrom(text string, caller int) {
	c.lines = append(c.lines, split(text, caller)...)
}

// InsertText puts text in front of everything already queued.
func (c *CommandBuffer) InsertText(text string) {
	c.InsertTextFrom(text, 0)
}

// InsertTextFrom is InsertText for text issued by the event caller.
func (c *CommandBuffer) InsertTextFrom(text string, caller int) {
	c.lines = append(split(text, caller), c.lines...)
}

// Pending returns the number of queued lines.
func (c *CommandBuffer) Pending() int {
	return len(c.lines)
}

// Execute runs queued lines until the buffer is empty or a wait is hit.
// The first error stops execution, the failing line is dropped.
func (c *CommandBuffer) Execute() error {
	for len(c.lines) != 0 {
		l := c.lines[0]
		c.lines = c.lines[1:]
		a := cmd.Parse(l.text)
		if a.Argv(0).String() == "wait" {
			c.wait = true
		} else if err := c.executors.execute(c, a, l.caller); err != nil {
			return err
		}
		if c.wait {
			// wait for the next frame to continue executing
			c.wait = false
			return nil
		}
	}
	return nil
}

// split cuts text at newlines and at semicolons outside of quotes.
func split(text string, caller int) []line {
	var r []line
	quote := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quote = !quote
			continue
		case ';':
			if quote {
				continue
			}
		case '\n':
		default:
			continue
		}
		r = append(r, line{text[start:i], caller})
		start = i + 1
		quote = false
	}
	if start < len(text) {
		r = append(r, line{text[start:], caller})
	}
	return r
}
