// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes user visible console messages. Until a console
// installs its own sinks everything goes to the standard logger.
package conlog

import (
	"log"
	"sync"
)

var (
	mu sync.RWMutex
	p  func(string, ...interface{}) = log.Printf
	sp func(string, ...interface{}) = log.Printf
)

// SetPrintf sets the sink of Printf, nil restores the standard logger.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	mu.Lock()
	defer mu.Unlock()
	p = f
}

// SetSafePrintf sets the sink used for output that may be produced
// while the console itself is being drawn.
func SetSafePrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	mu.Lock()
	defer mu.Unlock()
	sp = f
}

func Printf(format string, v ...interface{}) {
	mu.RLock()
	f := p
	mu.RUnlock()
	f(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	mu.RLock()
	f := sp
	mu.RUnlock()
	f(format, v...)
}
