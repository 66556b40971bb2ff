// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"emittance/history"
)

const (
	maxConsoleLines = 256
)

// Console keeps the printed lines and the line being typed.
type Console struct {
	mu      sync.Mutex
	lines   []string
	partial string // text printed without trailing newline
	input   []rune
	history history.History
}

// Printf is installed as conlog sink. Output may come from any goroutine.
func (c *Console) Printf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	log.Print(s)
	c.Print(s)
}

func (c *Console) Print(txt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	parts := strings.Split(c.partial+txt, "\n")
	c.partial = parts[len(parts)-1]
	c.lines = append(c.lines, parts[:len(parts)-1]...)
	if over := len(c.lines) - maxConsoleLines; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

// Last returns up to n of the newest lines, oldest first.
func (c *Console) Last(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	all := c.lines
	if c.partial != "" {
		all = append(all[:len(all):len(all)], c.partial)
	}
	if n > len(all) {
		n = len(all)
	}
	r := make([]string, n)
	copy(r, all[len(all)-n:])
	return r
}

func (c *Console) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.partial = ""
	c.mu.Unlock()
}

func (c *Console) Input() string {
	return string(c.input)
}

func (c *Console) typeRune(r rune) {
	c.input = append(c.input, r)
}

func (c *Console) backspace() {
	if len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
}

// submit returns the typed line and starts a new one.
func (c *Console) submit() string {
	l := string(c.input)
	c.input = c.input[:0]
	c.history.Add(l)
	return l
}

func (c *Console) historyUp() {
	c.history.Up()
	c.input = []rune(c.history.String())
}

func (c *Console) historyDown() {
	c.history.Down()
	c.input = []rune(c.history.String())
}

// complete extends the input to the longest common prefix of the
// matching names.
func (c *Console) complete(names []string) {
	part := strings.ToLower(string(c.input))
	if part == "" || strings.ContainsAny(part, " \t") {
		return
	}
	var match []string
	for _, n := range names {
		if strings.HasPrefix(n, part) {
			match = append(match, n)
		}
	}
	if len(match) == 0 {
		return
	}
	p := match[0]
	for _, m := range match[1:] {
		for !strings.HasPrefix(m, p) {
			p = p[:len(p)-1]
		}
	}
	if len(match) == 1 {
		p += " "
	} else {
		c.Print(strings.Join(match, " ") + "\n")
	}
	c.input = []rune(p)
}

// LoadHistory reads the typed lines of earlier sessions from dir.
func (c *Console) LoadHistory(dir string) error {
	return c.history.Load(dir)
}

func (c *Console) SaveHistory(dir string) error {
	return c.history.Save(dir)
}
