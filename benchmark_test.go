package cinder

import "testing"

// benchSurface is a draw sink with no bookkeeping.
type benchSurface struct{ w, h float64 }

func (s *benchSurface) Width() float64                      { return s.w }
func (s *benchSurface) Height() float64                     { return s.h }
func (s *benchSurface) DrawCircle(x, y, r float64, c Color) {}

func benchOptions() *ParticleOptions {
	return &ParticleOptions{
		Mass:         1,
		Radius:       2,
		Bounce:       1,
		Color:        ColorWhite,
		Life:         Range{Min: 1e9, Max: 1e9},
		Speed:        Range{Min: 20, Max: 120},
		Angle:        Range{Min: 0, Max: 6.28},
		Gravity:      Vector2{X: 0, Y: 90},
		Lifespan:     1e9,
		LifeRangeMax: 1e9,
	}
}

func BenchmarkPoolAcquireRelease(b *testing.B) {
	p := NewPool(func() *poolItem { return &poolItem{} }, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj, _ := p.Acquire()
		p.Release(obj)
	}
}

func BenchmarkEmitterStep500(b *testing.B) {
	e := NewEmitter(NewContext(1920, 1080), Vector2{X: 960, Y: 540}, 500, benchOptions)
	e.SpawnBurst(500)
	s := &benchSurface{w: 1920, h: 1080}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(s, 1.0/60.0)
	}
}

func BenchmarkCollisionPass200(b *testing.B) {
	e := NewEmitter(NewContext(1920, 1080), Vector2{X: 960, Y: 540}, 200, benchOptions)
	e.Collisions = true
	e.SpawnBurst(200)
	s := &benchSurface{w: 1920, h: 1080}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(s, 1.0/60.0)
	}
}

func BenchmarkDensityPass200(b *testing.B) {
	e := NewEmitter(NewContext(1920, 1080), Vector2{X: 960, Y: 540}, 200, benchOptions)
	e.SetKernel(NewSmoothingKernel(40))
	e.SpawnBurst(200)
	s := &benchSurface{w: 1920, h: 1080}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(s, 1.0/60.0)
	}
}

func BenchmarkVectorRotate(b *testing.B) {
	v := NewVector2(3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Rotate(0.01)
	}
}
