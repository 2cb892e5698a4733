package cinder

import (
	"math"
	"path/filepath"
	"testing"
)

func TestPresetMergeOverrides(t *testing.T) {
	base := Preset{
		Density:  Ptr(1.0),
		Friction: Ptr(0.1),
		Size:     &Range{Min: 2, Max: 4},
	}
	over := Preset{
		Density: Ptr(3.0),
		Fade:    "out-quad",
	}

	merged := base.Merge(over)
	if *merged.Density != 3 {
		t.Errorf("merged density = %v, want 3", *merged.Density)
	}
	if *merged.Friction != 0.1 {
		t.Errorf("merged friction = %v, want base value 0.1", *merged.Friction)
	}
	if merged.Size.Min != 2 || merged.Size.Max != 4 {
		t.Error("merged size should keep the base range")
	}
	if merged.Fade != "out-quad" {
		t.Errorf("merged fade = %q, want %q", merged.Fade, "out-quad")
	}
	// Inputs untouched.
	if *base.Density != 1 || base.Fade != "" {
		t.Error("Merge mutated the base preset")
	}
}

func TestMergePresetsComposesLeftToRight(t *testing.T) {
	a := Preset{Density: Ptr(1.0)}
	b := Preset{Density: Ptr(2.0)}
	c := Preset{Bounce: Ptr(0.5)}

	merged := MergePresets(a, b, c)
	if *merged.Density != 2 {
		t.Errorf("density = %v, want the later overlay's 2", *merged.Density)
	}
	if *merged.Bounce != 0.5 {
		t.Errorf("bounce = %v, want 0.5", *merged.Bounce)
	}
}

func TestPresetOptionsDerivesMass(t *testing.T) {
	p := Preset{
		Density: Ptr(2.0),
		Size:    &Range{Min: 3, Max: 3},
	}
	o := p.Options()
	want := 2 * math.Pi * 9
	if !approx(o.Mass, want) {
		t.Errorf("mass = %v, want density*pi*r^2 = %v", o.Mass, want)
	}
}

func TestPresetOptionsRollsLife(t *testing.T) {
	p := Preset{Life: &Range{Min: 1, Max: 2}}
	o := p.Options()
	if o.Lifespan < 1 || o.Lifespan > 2 {
		t.Errorf("lifespan = %v, want in [1, 2]", o.Lifespan)
	}
	if o.LifeRangeMax != 2 {
		t.Errorf("life range max = %v, want 2", o.LifeRangeMax)
	}
	if o.Alpha <= 0 {
		t.Errorf("initial alpha = %v, want > 0", o.Alpha)
	}
}

func TestPresetFactoryYieldsFreshRecords(t *testing.T) {
	factory := Presets["emitter"].Factory()
	a := factory()
	b := factory()
	if a == b {
		t.Error("factory returned a shared record")
	}
}

func TestFadeFuncUnknownFallsBackToLinear(t *testing.T) {
	if fadeFunc("no-such-ease") != nil {
		t.Error("unknown fade name should resolve to nil (linear)")
	}
	if fadeFunc("") != nil {
		t.Error("empty fade name should resolve to nil (linear)")
	}
	if fadeFunc("out-quad") == nil {
		t.Error("out-quad should resolve to a gween ease function")
	}
}

func TestBuiltinPresetsMaterialize(t *testing.T) {
	for name, preset := range Presets {
		o := preset.Options()
		if o.Mass <= 0 {
			t.Errorf("preset %q produced mass %v, want > 0", name, o.Mass)
		}
		if o.Radius <= 0 {
			t.Errorf("preset %q produced radius %v, want > 0", name, o.Radius)
		}
		if o.Lifespan <= 0 {
			t.Errorf("preset %q produced lifespan %v, want > 0", name, o.Lifespan)
		}
	}
}

func TestPresetYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	in := map[string]Preset{
		"ember": {
			Density: Ptr(1.5),
			Size:    &Range{Min: 2, Max: 6},
			Gravity: &Vector2{X: 0, Y: 120},
			Color:   &Color{R: 1, G: 0.5, B: 0.25, A: 1},
			Fade:    "out-cubic",
		},
	}

	if err := SavePresets(path, in); err != nil {
		t.Fatalf("SavePresets: %v", err)
	}
	out, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}

	ember, ok := out["ember"]
	if !ok {
		t.Fatal("loaded presets missing \"ember\"")
	}
	if *ember.Density != 1.5 {
		t.Errorf("density = %v, want 1.5", *ember.Density)
	}
	if ember.Size.Min != 2 || ember.Size.Max != 6 {
		t.Errorf("size = %+v, want {2 6}", *ember.Size)
	}
	if ember.Gravity.Y != 120 {
		t.Errorf("gravity.Y = %v, want 120", ember.Gravity.Y)
	}
	if ember.Color.G != 0.5 {
		t.Errorf("color.G = %v, want 0.5", ember.Color.G)
	}
	if ember.Fade != "out-cubic" {
		t.Errorf("fade = %q, want out-cubic", ember.Fade)
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing presets file")
	}
}
