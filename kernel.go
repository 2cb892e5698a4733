package cinder

import "math"

// SmoothingKernel estimates a smoothed local density for each particle,
// the SPH building block used by fluid-like effects. The radius h bounds
// the neighborhood a particle can influence; the kernel caches h^2 and the
// 2D Poly6 normalization constant 4/(pi*h^8) so per-pair evaluation stays
// cheap.
//
// The density pass is a full O(n^2) pairwise sweep. That is fine at the
// pool capacities this library targets; a spatial index would be the next
// step if it ever isn't.
type SmoothingKernel struct {
	h    float64
	h2   float64
	norm float64
}

// NewSmoothingKernel creates a kernel with the given smoothing radius.
func NewSmoothingKernel(h float64) *SmoothingKernel {
	k := &SmoothingKernel{}
	k.SetRadius(h)
	return k
}

// SetRadius recomputes the cached h^2 and normalization constant. Call it
// whenever the smoothing radius changes. A non-positive radius is reported
// and leaves the kernel inert (every evaluation returns zero).
func (k *SmoothingKernel) SetRadius(h float64) {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		warnf("SmoothingKernel.SetRadius called with invalid radius %v; kernel disabled", h)
		k.h = 0
		k.h2 = 0
		k.norm = 0
		return
	}
	k.h = h
	k.h2 = h * h
	k.norm = 4 / (math.Pi * math.Pow(h, 8))
}

// Radius returns the current smoothing radius.
func (k *SmoothingKernel) Radius() float64 {
	return k.h
}

// Poly6 evaluates the kernel for a squared distance. Zero beyond the
// smoothing radius.
func (k *SmoothingKernel) Poly6(distSq float64) float64 {
	if distSq > k.h2 {
		return 0
	}
	d := k.h2 - distSq
	return k.norm * d * d * d
}

// CalculateDensities runs the pairwise density pass over the given
// particles, writing each particle's smoothed density into its options
// record (FluidDensity). Every particle starts from its own
// self-contribution mass * Poly6(0) and accumulates the kernel-weighted
// mass of every other particle within the smoothing radius.
func (k *SmoothingKernel) CalculateDensities(particles []*Particle) {
	if k.h2 == 0 {
		return
	}
	for _, p := range particles {
		density := p.Options.Mass * k.Poly6(0)
		for _, o := range particles {
			if o == p {
				continue
			}
			distSq := p.Position.DistanceSq(&o.Position)
			if distSq > k.h2 {
				continue
			}
			density += o.Options.Mass * k.Poly6(distSq)
		}
		p.Options.FluidDensity = density
	}
}
