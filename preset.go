package cinder

import (
	"fmt"
	"math"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Preset is a named overlay of particle configuration. Unset (nil) fields
// fall through to whatever they are merged over, so feature-specific
// presets compose over a base with Merge at construction time; there is no
// live configuration chain after that.
//
// Presets marshal to and from YAML (see LoadPresets / SavePresets).
type Preset struct {
	Static   *bool    `yaml:"static,omitempty"`
	Density  *float64 `yaml:"density,omitempty"`
	Size     *Range   `yaml:"size,omitempty"`
	Life     *Range   `yaml:"life,omitempty"`
	Speed    *Range   `yaml:"speed,omitempty"`
	Angle    *Range   `yaml:"angle,omitempty"`
	Friction *float64 `yaml:"friction,omitempty"`
	Drag     *float64 `yaml:"drag,omitempty"`
	Bounce   *float64 `yaml:"bounce,omitempty"`
	Gravity  *Vector2 `yaml:"gravity,omitempty"`
	Color    *Color   `yaml:"color,omitempty"`
	// Fade names an easing curve for the alpha fade ("linear",
	// "in-quad", "out-quad", "in-out-quad", "in-cubic", "out-cubic",
	// "in-expo", "out-expo", "in-sine", "out-sine"). Empty means linear.
	Fade string `yaml:"fade,omitempty"`
}

// fadeFuncs maps preset fade names onto gween easing functions. Linear is
// represented by a nil TweenFunc (the particle's built-in fade formula).
var fadeFuncs = map[string]ease.TweenFunc{
	"linear":      nil,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
}

// fadeFunc resolves a fade name. Unknown names are reported and treated as
// linear.
func fadeFunc(name string) ease.TweenFunc {
	if name == "" {
		return nil
	}
	fn, ok := fadeFuncs[name]
	if !ok {
		warnf("unknown fade %q in preset; using linear", name)
		return nil
	}
	return fn
}

// Merge returns p with every field set in over overriding it. Neither
// input is modified.
func (p Preset) Merge(over Preset) Preset {
	if over.Static != nil {
		p.Static = over.Static
	}
	if over.Density != nil {
		p.Density = over.Density
	}
	if over.Size != nil {
		p.Size = over.Size
	}
	if over.Life != nil {
		p.Life = over.Life
	}
	if over.Speed != nil {
		p.Speed = over.Speed
	}
	if over.Angle != nil {
		p.Angle = over.Angle
	}
	if over.Friction != nil {
		p.Friction = over.Friction
	}
	if over.Drag != nil {
		p.Drag = over.Drag
	}
	if over.Bounce != nil {
		p.Bounce = over.Bounce
	}
	if over.Gravity != nil {
		p.Gravity = over.Gravity
	}
	if over.Color != nil {
		p.Color = over.Color
	}
	if over.Fade != "" {
		p.Fade = over.Fade
	}
	return p
}

// MergePresets composes overlays left to right over a base preset.
func MergePresets(base Preset, overlays ...Preset) Preset {
	for _, over := range overlays {
		base = base.Merge(over)
	}
	return base
}

// Options materializes a ParticleOptions from the preset: the size range
// is rolled into a radius, mass is derived from density, and the lifespan
// is rolled from the life range. Each call produces an independent,
// freshly randomized record, which is exactly the per-particle factory
// contract NewEmitter wants; see Factory.
func (p Preset) Options() *ParticleOptions {
	o := &ParticleOptions{
		Radius: 3,
		Bounce: 1,
		Color:  ColorWhite,
		Speed:  Range{Min: 40, Max: 120},
		Angle:  Range{Min: 0, Max: 2 * math.Pi},
		Life:   Range{Min: 1, Max: 2},
		Fade:   fadeFunc(p.Fade),
	}
	density := 1.0
	if p.Static != nil {
		o.Static = *p.Static
	}
	if p.Density != nil {
		density = *p.Density
	}
	if p.Size != nil {
		o.Radius = p.Size.Random()
	}
	if p.Life != nil {
		o.Life = *p.Life
	}
	if p.Speed != nil {
		o.Speed = *p.Speed
	}
	if p.Angle != nil {
		o.Angle = *p.Angle
	}
	if p.Friction != nil {
		o.Friction = *p.Friction
	}
	if p.Drag != nil {
		o.Drag = *p.Drag
	}
	if p.Bounce != nil {
		o.Bounce = *p.Bounce
	}
	if p.Gravity != nil {
		o.Gravity = *p.Gravity
	}
	if p.Color != nil {
		o.Color = *p.Color
	}
	o.DeriveMass(density)
	o.ResetLife()
	o.Alpha = o.Lifespan / (2 * o.LifeRangeMax)
	return o
}

// Factory adapts the preset to the options-factory contract of NewEmitter.
func (p Preset) Factory() func() *ParticleOptions {
	return p.Options
}

// Presets holds the builtin particle types. Compose them with Merge for
// variants, or start from scratch with a zero Preset.
var Presets = map[string]Preset{
	"emitter": {
		Density:  Ptr(1.0),
		Size:     &Range{Min: 2, Max: 5},
		Life:     &Range{Min: 1, Max: 3},
		Speed:    &Range{Min: 40, Max: 160},
		Angle:    &Range{Min: -0.75 * math.Pi, Max: -0.25 * math.Pi},
		Friction: Ptr(0.02),
		Bounce:   Ptr(1.0),
		Gravity:  &Vector2{X: 0, Y: 90},
	},
	"smoke": {
		Density: Ptr(0.3),
		Size:    &Range{Min: 4, Max: 9},
		Life:    &Range{Min: 1.5, Max: 3.5},
		Speed:   &Range{Min: 10, Max: 40},
		Angle:   &Range{Min: -0.62 * math.Pi, Max: -0.38 * math.Pi},
		Drag:    Ptr(1.2),
		Bounce:  Ptr(1.0),
		Gravity: &Vector2{X: 0, Y: -20},
		Color:   &Color{R: 0.6, G: 0.6, B: 0.62, A: 1},
		Fade:    "out-quad",
	},
	"spark": {
		Density:  Ptr(2.0),
		Size:     &Range{Min: 1, Max: 2.5},
		Life:     &Range{Min: 0.3, Max: 0.9},
		Speed:    &Range{Min: 120, Max: 320},
		Friction: Ptr(0.01),
		Bounce:   Ptr(0.6),
		Gravity:  &Vector2{X: 0, Y: 160},
		Color:    &Color{R: 1, G: 0.82, B: 0.3, A: 1},
		Fade:     "out-expo",
	},
	"bounds": {
		Static:  Ptr(true),
		Density: Ptr(4.0),
		Size:    &Range{Min: 12, Max: 12},
		Life:    &Range{Min: 3600, Max: 3600},
		Speed:   &Range{Min: 0, Max: 0},
		Gravity: &Vector2{},
		Color:   &Color{R: 0.35, G: 0.4, B: 0.5, A: 1},
	},
}

// LoadPresets reads a YAML file of named presets.
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return presets, nil
}

// SavePresets writes named presets to a YAML file.
func SavePresets(path string, presets map[string]Preset) error {
	data, err := yaml.Marshal(presets)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	return nil
}

// Ptr returns a pointer to v, a convenience for filling Preset overlay
// fields inline.
func Ptr[T any](v T) *T { return &v }
