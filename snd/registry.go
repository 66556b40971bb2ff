// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"emittance/conlog"
	"emittance/math/vec"

	"github.com/google/uuid"
)

type binding struct {
	src     *Source
	voice   Voice
	started bool
}

func (b *binding) release() {
	b.voice.Stop()
	b.voice = nil
}

// Registry owns the voices of all active sources of a map. It holds at
// most one voice per source. A nil *Registry is valid and binds nothing,
// that is how a disabled sound system looks to the world.
type Registry struct {
	backend  Backend
	bindings []*binding // insertion order
	bySource map[*Source]*binding
}

func NewRegistry(b Backend) *Registry {
	return &Registry{
		backend:  b,
		bySource: make(map[*Source]*binding),
	}
}

// EnsureBound creates the voice of src if it has none yet. It is safe to
// call any number of times per frame.
func (r *Registry) EnsureBound(src *Source) {
	if r == nil || src == nil || !src.active || src.broken {
		return
	}
	if _, ok := r.bySource[src]; ok {
		return
	}
	v, err := r.backend.NewVoice(src.file)
	if err != nil {
		// do not try again every frame
		src.broken = true
		conlog.Printf("Couldn't load %s (sound emittance %v): %v\n", src.file, src.id, err)
		return
	}
	v.SetVolume(src.baseVolume)
	v.SetPitch(src.pitch)
	b := &binding{
		src:   src,
		voice: v,
	}
	r.bindings = append(r.bindings, b)
	r.bySource[src] = b
}

// Bound reports whether src currently owns a voice.
func (r *Registry) Bound(src *Source) bool {
	if r == nil {
		return false
	}
	_, ok := r.bySource[src]
	return ok
}

// EvictDead stops and removes the voices of all inactive sources.
// It returns the number of removed voices.
func (r *Registry) EvictDead() int {
	if r == nil {
		return 0
	}
	return r.remove(func(b *binding) bool {
		return b.src == nil || !b.src.active
	})
}

// Release stops and removes the voice of src.
func (r *Registry) Release(src *Source) bool {
	if r == nil {
		return false
	}
	if _, ok := r.bySource[src]; !ok {
		return false
	}
	return r.remove(func(b *binding) bool { return b.src == src }) != 0
}

// Flush stops every voice. Called when the map is torn down.
func (r *Registry) Flush() {
	if r == nil {
		return
	}
	r.remove(func(*binding) bool { return true })
}

func (r *Registry) remove(dead func(*binding) bool) int {
	n := 0
	kept := r.bindings[:0]
	for _, b := range r.bindings {
		if !dead(b) {
			kept = append(kept, b)
			continue
		}
		b.release()
		delete(r.bySource, b.src)
		n++
	}
	clear(r.bindings[len(kept):])
	r.bindings = kept
	return n
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.bindings)
}

// Info is a snapshot of one binding for diagnostics.
type Info struct {
	ID       uuid.UUID
	File     string
	Distance float32
	Started  bool
	Playing  bool
	Volume   float32
	Position vec.Vec3
}

// Each calls f for every binding in insertion order.
func (r *Registry) Each(f func(Info)) {
	if r == nil {
		return
	}
	for _, b := range r.bindings {
		f(Info{
			ID:       b.src.id,
			File:     b.src.file,
			Distance: b.src.rel.Length(),
			Started:  b.started,
			Playing:  b.voice.IsPlaying(),
			Volume:   b.voice.Volume(),
			Position: b.voice.Position(),
		})
	}
}
