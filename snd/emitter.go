// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"emittance/math/vec"
)

// Emitter is embedded by map entities that can emit sound. The zero value
// emits nothing.
type Emitter struct {
	src *Source
}

// Set replaces the emittance of the entity. The voice of a previous
// emittance is stopped before the new one is bound so an entity never
// owns two voices.
func (e *Emitter) Set(r *Registry, file string, radius float32, volume, pitch int) *Source {
	if e.src != nil {
		e.src.Clear()
		r.Release(e.src)
	}
	e.src = NewSource(file, radius, volume, pitch)
	r.EnsureBound(e.src)
	return e.src
}

// Clear removes the emittance. Its voice stops on the next update.
func (e *Emitter) Clear() {
	if e.src == nil {
		return
	}
	e.src.Clear()
	e.src = nil
}

// Source returns the current source or nil.
func (e *Emitter) Source() *Source {
	return e.src
}

// Update stores this frames offset to the listener. It binds the source
// again if the registry was flushed while the entity survived.
func (e *Emitter) Update(r *Registry, rel vec.Vec2) {
	if e.src == nil {
		return
	}
	e.src.SetRelativePosition(rel)
	r.EnsureBound(e.src)
}
