package cinder

import (
	"math"

	"github.com/tanema/gween/ease"
)

// ParticleOptions is the per-particle configuration record. It is owned by
// the configuration collaborator and shared with the simulation, which is
// allowed to mutate Lifespan, Alpha, and FluidDensity but nothing else.
//
// Options are usually produced by a Preset (see Presets), which rolls the
// randomized per-instance values and derives Mass; hand-built options work
// too as long as Mass and Radius are positive.
type ParticleOptions struct {
	// Static marks an immovable particle: forces, drag, and collision
	// displacement are all skipped for it.
	Static bool

	// Mass is derived from material density as density * pi * radius^2.
	Mass float64

	// Lifespan is the remaining life in seconds, decremented every step.
	// The particle dies when it drops below zero.
	Lifespan float64

	// LifeRangeMax is the upper bound of the lifespan roll, used by the
	// alpha fade: alpha = lifespan / (2 * LifeRangeMax).
	LifeRangeMax float64

	// Radius is the particle's draw and collision radius.
	Radius float64

	// Friction scales the velocity-opposing drag force applied by
	// Particle.ApplyDrag.
	Friction float64

	// Drag is an exponential air-resistance coefficient applied to the
	// velocity each step (v *= exp(-Drag*dt)). Zero disables it.
	Drag float64

	// Bounce is the restitution applied when a boundary reflection flips a
	// velocity component; 1 is a pure elastic inversion.
	Bounce float64

	// Color is opaque to the simulation except for its alpha, which is
	// overwritten every step from the lifespan fade.
	Color Color

	// Alpha is the current fade value, written every step.
	Alpha float64

	// Gravity is the constant force applied each integration step.
	Gravity Vector2

	// FluidDensity is the smoothed (SPH) density, written by
	// SmoothingKernel.CalculateDensities when a kernel is attached.
	FluidDensity float64

	// Fade optionally reshapes the linear alpha fade through a gween
	// easing function. Nil means linear.
	Fade ease.TweenFunc

	// Speed, Angle, and Life are the randomized spawn ranges. Speed and
	// Angle derive the initial velocity at spawn; Life re-rolls Lifespan
	// on every (re)spawn.
	Speed Range
	Angle Range
	Life  Range
}

// DeriveMass sets Mass from a material density and the current radius.
func (o *ParticleOptions) DeriveMass(density float64) {
	o.Mass = density * math.Pi * o.Radius * o.Radius
}

// ResetLife re-rolls Lifespan from the Life range and refreshes
// LifeRangeMax. Called by the emitter on every spawn so a recycled
// particle does not inherit an expired lifespan. A no-op when the Life
// range is unset, so hand-assigned lifespans survive.
func (o *ParticleOptions) ResetLife() {
	if o.Life.Max <= 0 {
		return
	}
	o.Lifespan = o.Life.Random()
	o.LifeRangeMax = o.Life.Max
}
