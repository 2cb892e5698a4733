package cinder

import "math"

// Emitter owns a particle pool, spawns new particles at a fixed origin,
// and drives the per-frame simulation of every active particle. The frame
// driver calls Spawn and then Step once per rendered frame.
type Emitter struct {
	// Origin is where new particles appear. Mutable between frames.
	Origin Vector2

	// Integrator selects the position update scheme for the whole
	// simulation. Defaults to IntegrateEuler.
	Integrator Integrator

	// Collisions enables the pairwise collision pass during Step.
	Collisions bool

	ctx     *Context
	pool    *Pool[*Particle]
	kernel  *SmoothingKernel
	release func(*Particle)

	// scratch snapshots the active view each frame so releases triggered
	// by dying particles don't disturb the iteration.
	scratch []*Particle
}

// NewEmitter creates an emitter with a pool of capacity particles, each
// bound to an options record produced by newOptions. A nil factory or an
// invalid capacity panics (configuration error).
func NewEmitter(ctx *Context, origin Vector2, capacity int, newOptions func() *ParticleOptions) *Emitter {
	if newOptions == nil {
		panic("cinder: NewEmitter requires a non-nil options factory")
	}
	if ctx == nil {
		ctx = NewContext(0, 0)
	}
	e := &Emitter{
		Origin: origin,
		ctx:    ctx,
		pool: NewPool(func() *Particle {
			return NewParticle(newOptions())
		}, capacity),
		scratch: make([]*Particle, 0, capacity),
	}
	// Bound once; handing this to Particle.Init keeps the dependency
	// one-directional (particles never see the pool).
	e.release = func(p *Particle) {
		e.pool.Release(p)
	}
	return e
}

// Pool exposes the emitter's particle pool.
func (e *Emitter) Pool() *Pool[*Particle] {
	return e.pool
}

// Context returns the simulation context the emitter reads its bounds
// from.
func (e *Emitter) Context() *Context {
	return e.ctx
}

// SetKernel attaches a smoothing kernel; Step then runs the density pass
// over the active particles every frame. Pass nil to detach.
func (e *Emitter) SetKernel(k *SmoothingKernel) {
	e.kernel = k
}

// ActiveCount returns the number of live particles.
func (e *Emitter) ActiveCount() int {
	return e.pool.ActiveCount()
}

// Spawn acquires one particle and launches it from the origin with a
// velocity rolled from its options' speed and angle ranges. When the pool
// is exhausted Spawn silently does nothing: capacity throttles the spawn
// rate, it doesn't signal an error.
func (e *Emitter) Spawn() {
	p, ok := e.pool.Acquire()
	if !ok {
		return
	}
	opts := p.Options
	opts.ResetLife()

	speed := opts.Speed.Random()
	sin, cos := math.Sincos(opts.Angle.Random())
	velocity := Vector2{X: cos * speed, Y: sin * speed}

	p.Init(e.release, e.Origin.Clone(), &velocity)
}

// SpawnBurst spawns up to n particles, stopping early if the pool runs
// dry.
func (e *Emitter) SpawnBurst(n int) {
	for i := 0; i < n && e.pool.InactiveCount() > 0; i++ {
		e.Spawn()
	}
}

// Step advances the whole simulation by dt seconds and draws every
// surviving particle onto the surface: bounds sync, drag + integration
// (deaths release back to the pool mid-pass and are skipped thereafter),
// the optional pairwise collision pass, boundary reflection, draw, and the
// optional density pass.
func (e *Emitter) Step(surface Surface, dt float64) {
	e.ctx.Resize(surface.Width(), surface.Height())

	e.scratch = append(e.scratch[:0], e.pool.ActiveView()...)

	for _, p := range e.scratch {
		if !p.Active() {
			continue
		}
		p.ApplyDrag()
		p.Step(e.Integrator, dt)
	}

	if e.Collisions {
		for i, p := range e.scratch {
			if !p.Active() {
				continue
			}
			for _, o := range e.scratch[i+1:] {
				if !o.Active() {
					continue
				}
				p.CheckCollision(o)
			}
		}
	}

	for _, p := range e.scratch {
		if !p.Active() {
			continue
		}
		p.CheckBoundaries(e.ctx.Width, e.ctx.Height)
		p.Draw(surface)
	}

	if e.kernel != nil {
		e.kernel.CalculateDensities(e.pool.ActiveView())
	}
}
