package cinder

import "math/rand"

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied. The core never interprets R, G, or B; only A is written,
// as a function of remaining lifespan.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default particle color.
var ColorWhite = Color{1, 1, 1, 1}

// Range is a general-purpose min/max range, used for the per-particle
// randomized spawn values (speed, angle, size, lifespan).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Surface is the narrow interface the simulation draws through. The
// concrete renderer (window, offscreen image, test stub) lives outside the
// core; NewImageSurface adapts an *ebiten.Image.
type Surface interface {
	// Width returns the current surface width in pixels.
	Width() float64
	// Height returns the current surface height in pixels.
	Height() float64
	// DrawCircle draws a filled circle centered at (x, y).
	DrawCircle(x, y, radius float64, c Color)
}

// Context carries the shared simulation dimensions. It replaces any global
// surface size: construct one, hand it to NewEmitter, and call Resize when
// the surface changes. Emitter.Step syncs it from the surface every frame.
type Context struct {
	Width  float64
	Height float64
}

// NewContext creates a simulation context with the given bounds.
func NewContext(width, height float64) *Context {
	return &Context{Width: width, Height: height}
}

// Resize updates the simulation bounds.
func (c *Context) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}

// toRGBA converts a cinder Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for ebiten draw calls.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
