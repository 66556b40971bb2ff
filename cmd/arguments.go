// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input line
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		return QArg{""}
	}
	return c.args[i]
}

// Argc returns the number of arguments including the command name.
func (c *Arguments) Argc() int {
	return len(c.args)
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString returns everything after the command name.
func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a command line into arguments. Words are separated by
// spaces or tabs, double quotes group words and a // starts a comment
// running to the end of the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}

	l := lexer{input: args.full}
	for {
		typ, val := l.next()
		switch typ {
		case itemWord:
			args.args = append(args.args, QArg{val})
		case itemString:
			val = strings.TrimPrefix(val, `"`)
			val = strings.TrimSuffix(val, `"`)
			args.args = append(args.args, QArg{val})
		case itemEOF:
			return
		}
	}
}

type itemType int

const (
	itemEOF    itemType = iota
	itemString          // quoted string includes quotes
	itemWord
)

type lexer struct {
	input string
	pos   int
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *lexer) advance() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	return r
}

const eof = -1

func (l *lexer) next() (itemType, string) {
	for isSpace(l.peek()) {
		l.advance()
	}
	start := l.pos
	switch r := l.peek(); {
	case r == eof || isEndOfLine(r):
		return itemEOF, ""
	case strings.HasPrefix(l.input[l.pos:], "//"):
		// just drop the rest of this line
		l.pos = len(l.input)
		return itemEOF, ""
	case r == '"':
		l.advance()
		for {
			switch l.advance() {
			case '"':
				return itemString, l.input[start:l.pos]
			case eof, '\n':
				// unterminated, take what we have
				return itemString, l.input[start:l.pos]
			}
		}
	default:
		for r := l.peek(); r != eof && r > ' '; r = l.peek() {
			l.advance()
		}
		return itemWord, l.input[start:l.pos]
	}
}

func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
