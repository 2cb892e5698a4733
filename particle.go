package cinder

import (
	"math"
	"math/rand"
)

// Integrator selects the position update scheme, chosen once per
// simulation on the Emitter.
type Integrator uint8

const (
	// IntegrateEuler advances the position by the raw velocity and folds
	// the timestep into the velocity update as dt^2. Tuned presets depend
	// on this coupling; it is not textbook semi-implicit Euler.
	IntegrateEuler Integrator = iota
	// IntegrateVerlet derives motion from the previous position, which
	// keeps constrained systems stable without storing velocity.
	IntegrateVerlet
)

// nextParticleID hands out particle IDs. Single-threaded by design, like
// the rest of the simulation.
var nextParticleID uint64

// Particle is one simulated entity. Instances are created once by the
// pool's factory and recycled forever after: only the active flag and the
// kinematic state change across lifetimes. While inactive, the kinematic
// state is meaningless.
type Particle struct {
	ID uint64

	Position     Vector2
	PrevPosition Vector2
	Velocity     Vector2
	Acceleration Vector2

	// Options is the shared configuration record. The particle writes
	// Lifespan and Alpha into it each step; everything else is read-only.
	Options *ParticleOptions

	active bool
	// release hands the particle back to its pool on death. The particle
	// never sees the pool itself, only this capability, which is cleared
	// after use to prevent double release.
	release func(*Particle)
}

// NewParticle creates an inactive particle bound to the given options
// record. A nil record is a configuration error.
func NewParticle(opts *ParticleOptions) *Particle {
	if opts == nil {
		panic("cinder: NewParticle requires non-nil options")
	}
	nextParticleID++
	return &Particle{ID: nextParticleID, Options: opts}
}

// Active reports whether the particle is currently simulating.
func (p *Particle) Active() bool {
	return p.active
}

// Init transitions the particle from inactive to active at the given
// position and velocity. The release callback is how the particle returns
// itself to its pool when it dies.
func (p *Particle) Init(release func(*Particle), position, velocity *Vector2) {
	p.active = true
	p.release = release
	p.Position.Copy(position)
	p.PrevPosition.Copy(position)
	p.Velocity.Copy(velocity)
	p.Acceleration.SetZero()
}

// ApplyForce accumulates f scaled by inverse mass into the acceleration.
// Static particles ignore forces. Mass must be positive; a zero or
// negative mass is a configuration error owned by the options record, not
// checked here.
func (p *Particle) ApplyForce(f *Vector2) {
	if p.Options.Static || f == nil {
		return
	}
	m := p.Options.Mass
	p.Acceleration.AddXY(f.X/m, f.Y/m)
}

// ApplyDrag applies a force opposing the current velocity, scaled by speed
// and the friction coefficient. A no-op for static or resting particles.
func (p *Particle) ApplyDrag() {
	if p.Options.Static {
		return
	}
	speed := p.Velocity.Magnitude()
	if speed == 0 {
		return
	}
	drag := p.Velocity.Clone().Normalize().MulScalar(-speed * p.Options.Friction)
	p.ApplyForce(drag)
}

// Step advances the particle by dt seconds: air drag decay, the selected
// integrator, then the lifespan countdown and alpha fade. When the
// lifespan drops below zero the particle dies and releases itself back to
// its pool.
func (p *Particle) Step(integrator Integrator, dt float64) {
	if !p.active {
		return
	}
	if d := p.Options.Drag; d > 0 {
		p.Velocity.MulScalar(math.Exp(-d * dt))
	}

	switch integrator {
	case IntegrateVerlet:
		p.stepVerlet(dt)
	default:
		p.stepEuler(dt)
	}

	p.Options.Lifespan -= dt
	p.commitAlpha()
	if p.Options.Lifespan < 0 {
		p.Destroy()
	}
}

// stepEuler: position advances by the raw velocity, then gravity is
// applied and the velocity absorbs acceleration * dt^2. The missing dt on
// the position term is intentional (see IntegrateEuler).
func (p *Particle) stepEuler(dt float64) {
	old := p.Position
	newPos := p.Position
	newPos.Add(&p.Velocity)

	p.ApplyForce(&p.Options.Gravity)
	p.Velocity.AddXY(p.Acceleration.X*dt*dt, p.Acceleration.Y*dt*dt)
	p.Acceleration.SetZero()

	p.PrevPosition = old
	p.Position = newPos
}

// stepVerlet: the step is the previous displacement plus
// acceleration * dt^2; velocity is implicit in the position history.
func (p *Particle) stepVerlet(dt float64) {
	p.ApplyForce(&p.Options.Gravity)

	old := p.Position
	newPos := p.Position
	newPos.AddXY(p.Position.X-p.PrevPosition.X, p.Position.Y-p.PrevPosition.Y)
	newPos.AddXY(p.Acceleration.X*dt*dt, p.Acceleration.Y*dt*dt)
	p.Acceleration.SetZero()

	p.PrevPosition = old
	p.Position = newPos
}

// commitAlpha writes the lifespan-driven fade into the options record:
// linear by default, reshaped through the options' ease function when set.
func (p *Particle) commitAlpha() {
	o := p.Options
	if o.LifeRangeMax <= 0 {
		return
	}
	a := o.Lifespan / (2 * o.LifeRangeMax)
	if o.Fade != nil {
		a = float64(o.Fade(float32(clamp01(a)), 0, 1, 1))
	}
	o.Alpha = a
}

// Destroy deactivates the particle and hands it back to its pool through
// the release callback, which is cleared afterward so a second Destroy is
// inert.
func (p *Particle) Destroy() {
	p.active = false
	if p.release != nil {
		cb := p.release
		cb(p)
		p.release = nil
	}
}

// CheckCollision detects and resolves overlap with another particle.
// Overlapping particles are pushed apart along the connecting normal by
// half the overlap each (a uniformly random direction stands in for the
// normal when the centers coincide), and approaching particles exchange a
// mass-weighted elastic impulse. Static participants collide but are never
// displaced or deflected. Reports whether a collision occurred.
func (p *Particle) CheckCollision(other *Particle) bool {
	if other == nil || other == p {
		return false
	}
	a, b := p.Options, other.Options

	minDist := a.Radius + b.Radius
	dx := p.Position.X - other.Position.X
	dy := p.Position.Y - other.Position.Y
	distSq := dx*dx + dy*dy
	if distSq >= minDist*minDist {
		return false
	}

	dist := math.Sqrt(distSq)
	var nx, ny float64
	if dist == 0 {
		// Coincident centers leave the normal undefined; pick a random
		// direction so the pair separates instead of sticking.
		sin, cos := math.Sincos(rand.Float64() * 2 * math.Pi)
		nx, ny = cos, sin
	} else {
		nx, ny = dx/dist, dy/dist
	}

	half := (minDist - dist) / 2
	if !a.Static {
		p.Position.AddXY(nx*half, ny*half)
	}
	if !b.Static {
		other.Position.SubXY(nx*half, ny*half)
	}

	// Impulse only when approaching along the normal; separating pairs
	// are left alone so resolved collisions do not re-trigger.
	rvx := p.Velocity.X - other.Velocity.X
	rvy := p.Velocity.Y - other.Velocity.Y
	vn := rvx*nx + rvy*ny
	if vn < 0 {
		ix, iy := nx*vn, ny*vn
		total := a.Mass + b.Mass
		if !a.Static {
			p.Velocity.SubXY(ix*2*b.Mass/total, iy*2*b.Mass/total)
		}
		if !b.Static {
			other.Velocity.AddXY(ix*2*a.Mass/total, iy*2*a.Mass/total)
		}
	}
	return true
}

// CheckBoundaries clamps the particle into [radius, dimension-radius] on
// each axis and reflects the matching velocity component when a clamp
// triggers, scaled by the restitution coefficient (Bounce; 1 is a pure
// elastic inversion).
func (p *Particle) CheckBoundaries(width, height float64) {
	o := p.Options
	r := o.Radius

	if p.Position.X < r {
		p.Position.X = r
		p.Velocity.X = -p.Velocity.X * o.Bounce
	} else if p.Position.X > width-r {
		p.Position.X = width - r
		p.Velocity.X = -p.Velocity.X * o.Bounce
	}
	if p.Position.Y < r {
		p.Position.Y = r
		p.Velocity.Y = -p.Velocity.Y * o.Bounce
	} else if p.Position.Y > height-r {
		p.Position.Y = height - r
		p.Velocity.Y = -p.Velocity.Y * o.Bounce
	}
}

// Draw emits one circle at the particle's position, tinted with the
// options color at the current fade alpha.
func (p *Particle) Draw(surface Surface) {
	c := p.Options.Color
	c.A = p.Options.Alpha
	surface.DrawCircle(p.Position.X, p.Position.Y, p.Options.Radius, c)
}
