// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"emittance/math"
	"emittance/math/vec"
)

const (
	minSmoothing = 0.01
	maxSmoothing = 1
)

type Config struct {
	// Use3D enables listener space positioning. Without it only the
	// volume follows the distance.
	Use3D bool
	HRTF  bool
	// Smoothing is the per frame fraction volume and position move
	// towards their targets, 1 snaps instantly.
	Smoothing float32
}

func DefaultConfig() Config {
	return Config{
		Use3D:     true,
		HRTF:      true,
		Smoothing: 0.15,
	}
}

// Hooks are the extension points of the host scene.
type Hooks interface {
	// AddPostUpdate registers f to run once per frame after the world
	// was updated.
	AddPostUpdate(f func())
	// AddTeardown registers f to run before a new map is set up.
	AddTeardown(f func())
}

// Listener supplies the facing of the player.
type Listener interface {
	Direction() Direction
}

// Engine updates all voices of a registry once per frame.
type Engine struct {
	cfg Config
	reg *Registry
}

func NewEngine(cfg Config, reg *Registry) *Engine {
	cfg.Smoothing = math.Clamp(minSmoothing, cfg.Smoothing, maxSmoothing)
	return &Engine{
		cfg: cfg,
		reg: reg,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Registry() *Registry {
	return e.reg
}

// Subscribe hooks the engine into a scene. The registry is flushed on
// teardown and updated after every world update.
func (e *Engine) Subscribe(h Hooks, l Listener) {
	h.AddPostUpdate(func() {
		e.Update(l.Direction())
	})
	h.AddTeardown(e.reg.Flush)
	if p, ok := e.reg.backend.(Purger); ok {
		h.AddTeardown(p.Purge)
	}
}

// Update runs one frame. Voices of inactive sources are stopped first,
// then every remaining voice is started or moved towards its target.
func (e *Engine) Update(facing Direction) {
	if e == nil || e.reg == nil {
		return
	}
	e.reg.EvictDead()
	angle := facing.Angle()
	for _, b := range e.reg.bindings {
		e.updateBinding(b, angle)
	}
}

func (e *Engine) panner(src *Source) Panner {
	p := Panner{
		Model:       PanEqualPower,
		Distance:    DistanceLinear,
		MaxDistance: EffectiveMaxDistance(src.maxDistance),
	}
	if e.cfg.HRTF {
		p.Model = PanHRTF
	}
	return p
}

func (e *Engine) updateBinding(b *binding, angle float32) {
	src := b.src
	volume := TargetVolume(src.baseVolume, src.rel.Length(), src.maxDistance)
	var pos vec.Vec3
	if e.cfg.Use3D {
		pos.X, pos.Z = Transform(src.rel.X, src.rel.Y, angle)
	}

	v := b.voice
	switch {
	case !b.started && v.IsReady():
		// no fade in on the first frame
		b.started = true
		v.SetVolume(volume)
		if e.cfg.Use3D {
			v.SetPosition(pos)
		}
		v.Play(src.loop, src.offset)
		v.SetPanner(e.panner(src))
	case b.started && v.IsPlaying():
		f := e.cfg.Smoothing
		v.SetVolume(Smooth(v.Volume(), volume, f))
		if e.cfg.Use3D {
			cur := v.Position()
			v.SetPosition(vec.Vec3{
				X: Smooth(cur.X, pos.X, f),
				Z: Smooth(cur.Z, pos.Z, f),
			})
		}
	}
	// A started voice that stopped playing on its own is left alone until
	// its source goes away.
}
