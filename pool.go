package cinder

// Pool is a fixed-capacity recycling container. Every pooled object is
// created by the factory and lives for the lifetime of the pool; Acquire
// and Release only move objects between the active and inactive
// partitions. At all times the partitions are disjoint and together cover
// every pooled object.
//
// The pool is not safe for concurrent use; see the package doc.
type Pool[T comparable] struct {
	factory  func() T
	capacity int

	all      []T
	active   []T
	inactive []T
}

// NewPool creates a pool that eagerly pre-populates capacity instances,
// all inactive. A nil factory or a capacity below 1 is a configuration
// error and panics.
func NewPool[T comparable](factory func() T, capacity int) *Pool[T] {
	if factory == nil {
		panic("cinder: NewPool requires a non-nil factory")
	}
	if capacity < 1 {
		panic("cinder: NewPool requires capacity >= 1")
	}
	p := &Pool[T]{
		factory:  factory,
		capacity: capacity,
		all:      make([]T, 0, capacity),
		active:   make([]T, 0, capacity),
		inactive: make([]T, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		obj := factory()
		p.all = append(p.all, obj)
		p.inactive = append(p.inactive, obj)
	}
	return p
}

// Acquire checks an object out of the pool and returns it with ok = true.
// When every object is active the pool is exhausted and Acquire returns
// the zero value with ok = false; this is normal backpressure, not an
// error, and callers should simply try again later. Acquire never
// allocates beyond the pool's capacity.
func (p *Pool[T]) Acquire() (obj T, ok bool) {
	if n := len(p.inactive); n > 0 {
		obj = p.inactive[n-1]
		p.inactive = p.inactive[:n-1]
		p.active = append(p.active, obj)
		return obj, true
	}
	// The constructor fills the pool eagerly, so this grow path only runs
	// for pools whose factory returned duplicates or after external
	// tampering with the partitions. Kept for the capacity contract.
	if len(p.all) < p.capacity {
		obj = p.factory()
		p.all = append(p.all, obj)
		p.active = append(p.active, obj)
		return obj, true
	}
	var zero T
	return zero, false
}

// Release checks an object back into the pool. Releasing an object that is
// already inactive is an idempotent no-op. Releasing an object the pool
// has never seen is a caller error: it is reported as a warning and
// otherwise ignored.
func (p *Pool[T]) Release(obj T) {
	for i, a := range p.active {
		if a == obj {
			// Splice, preserving insertion order for ActiveView.
			p.active = append(p.active[:i], p.active[i+1:]...)
			p.inactive = append(p.inactive, obj)
			return
		}
	}
	for _, ia := range p.inactive {
		if ia == obj {
			return // already inactive
		}
	}
	warnf("Pool.Release called with an object the pool does not own; ignored")
}

// ActiveView exposes the live active sequence for iteration. The order is
// insertion order into the active partition; it is not stable across
// acquire/release cycles, and the slice must not be mutated or retained
// across frames.
func (p *Pool[T]) ActiveView() []T {
	return p.active
}

// Size returns the number of objects the pool has created.
func (p *Pool[T]) Size() int { return len(p.all) }

// Capacity returns the maximum number of objects the pool will ever hold.
func (p *Pool[T]) Capacity() int { return p.capacity }

// ActiveCount returns the number of checked-out objects.
func (p *Pool[T]) ActiveCount() int { return len(p.active) }

// InactiveCount returns the number of objects available to Acquire.
func (p *Pool[T]) InactiveCount() int { return len(p.inactive) }
