// Package cinder is a pooled, physics-integrated particle effects library
// for [Ebitengine].
//
// Cinder simulates short-lived circular particles recycled from a
// fixed-capacity pool, advanced frame by frame under simple force
// accumulation (gravity, drag, friction) with a choice of Euler or Verlet
// integration, elastic particle/particle collisions, boundary reflection,
// and an optional smoothed-density (SPH) pass.
//
// # Quick start
//
// Create an [Emitter] with a capacity and an options factory, then call
// [Emitter.Spawn] and [Emitter.Step] once per frame from your game loop:
//
//	ctx := cinder.NewContext(640, 480)
//	em := cinder.NewEmitter(ctx, cinder.Vector2{X: 320, Y: 400}, 500,
//		cinder.Presets["emitter"].Factory())
//
//	// inside ebiten.Game.Update / Draw:
//	em.Spawn()
//	em.Step(surface, dt)
//
// The drawing surface is anything implementing [Surface]; [NewImageSurface]
// adapts an *ebiten.Image. See examples/ for complete programs.
//
// # Pooling
//
// [Pool] is a fixed-capacity recycling container: every particle is
// allocated up front and only moves between the active and inactive
// partitions. [Pool.Acquire] returning false is normal backpressure:
// spawning is throttled by capacity, never an error. A dying particle
// returns itself to the pool through a release callback handed to it at
// init time; particles never hold a reference to their pool.
//
// # Configuration
//
// Particle behavior is plain data: [ParticleOptions], usually produced by
// composing named [Preset] overlays at construction time (see [Presets]
// and [LoadPresets] for YAML files). The alpha fade over a particle's
// lifespan is linear by default and can be reshaped with any
// [gween/ease] function.
//
// # Concurrency
//
// The core is single-threaded and frame-driven. Pool and Particle mutation
// are unsynchronized; if multiple simulation goroutines are introduced, the
// whole spawn+step pass must sit behind one mutex.
//
// [Ebitengine]: https://ebitengine.org
// [gween/ease]: https://github.com/tanema/gween
package cinder
