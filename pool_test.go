package cinder

import "testing"

type poolItem struct {
	n int
}

func newTestPool(t *testing.T, capacity int) *Pool[*poolItem] {
	t.Helper()
	n := 0
	return NewPool(func() *poolItem {
		n++
		return &poolItem{n: n}
	}, capacity)
}

// checkPartitions asserts the pool invariant: active and inactive are
// disjoint and together cover every pooled object.
func checkPartitions(t *testing.T, p *Pool[*poolItem]) {
	t.Helper()
	seen := make(map[*poolItem]string, p.Size())
	for _, obj := range p.active {
		seen[obj] = "active"
	}
	for _, obj := range p.inactive {
		if seen[obj] == "active" {
			t.Fatalf("object %v is in both partitions", obj.n)
		}
		seen[obj] = "inactive"
	}
	if len(seen) != len(p.all) {
		t.Fatalf("partitions cover %d objects, want %d", len(seen), len(p.all))
	}
	for _, obj := range p.all {
		if seen[obj] == "" {
			t.Fatalf("object %v is in neither partition", obj.n)
		}
	}
}

func TestNewPoolPrePopulates(t *testing.T) {
	p := newTestPool(t, 8)
	if p.Size() != 8 {
		t.Errorf("Size = %d, want 8", p.Size())
	}
	if p.InactiveCount() != 8 || p.ActiveCount() != 0 {
		t.Errorf("partitions = %d active / %d inactive, want 0/8",
			p.ActiveCount(), p.InactiveCount())
	}
	checkPartitions(t, p)
}

func TestNewPoolConfigurationErrors(t *testing.T) {
	assertPanics(t, "nil factory", func() { NewPool[*poolItem](nil, 4) })
	assertPanics(t, "zero capacity", func() { newTestPool(t, 0) })
}

func TestAcquireExhaustion(t *testing.T) {
	const capacity = 5
	p := newTestPool(t, capacity)

	for i := 0; i < capacity; i++ {
		obj, ok := p.Acquire()
		if !ok || obj == nil {
			t.Fatalf("Acquire %d failed, want success", i+1)
		}
		if p.Size() != capacity {
			t.Fatalf("Size = %d after acquire %d, want %d", p.Size(), i+1, capacity)
		}
	}

	obj, ok := p.Acquire()
	if ok || obj != nil {
		t.Errorf("Acquire beyond capacity = (%v, %v), want (nil, false)", obj, ok)
	}
	if p.Size() != capacity {
		t.Errorf("Size = %d after exhaustion, want %d", p.Size(), capacity)
	}
	checkPartitions(t, p)
}

func TestReleaseRoundTrip(t *testing.T) {
	p := newTestPool(t, 3)
	before := append([]*poolItem(nil), p.inactive...)

	obj, ok := p.Acquire()
	if !ok {
		t.Fatal("Acquire failed")
	}
	p.Release(obj)

	if p.ActiveCount() != 0 || p.InactiveCount() != 3 {
		t.Errorf("partitions after round trip = %d/%d, want 0/3",
			p.ActiveCount(), p.InactiveCount())
	}
	// Same object back in inactive.
	found := false
	for _, ia := range p.inactive {
		if ia == obj {
			found = true
		}
	}
	if !found {
		t.Error("released object not in the inactive partition")
	}
	if len(before) != len(p.inactive) {
		t.Errorf("inactive size = %d, want %d", len(p.inactive), len(before))
	}
	checkPartitions(t, p)
}

func TestReleaseIdempotent(t *testing.T) {
	p := newTestPool(t, 2)
	obj, _ := p.Acquire()
	p.Release(obj)
	p.Release(obj) // already inactive: silent no-op
	if p.InactiveCount() != 2 {
		t.Errorf("InactiveCount = %d after double release, want 2", p.InactiveCount())
	}
	checkPartitions(t, p)
}

func TestReleaseForeignObjectIgnored(t *testing.T) {
	p := newTestPool(t, 2)
	p.Release(&poolItem{n: 99}) // warned, otherwise ignored
	if p.ActiveCount() != 0 || p.InactiveCount() != 2 {
		t.Errorf("partitions = %d/%d after foreign release, want 0/2",
			p.ActiveCount(), p.InactiveCount())
	}
	checkPartitions(t, p)
}

func TestActiveViewInsertionOrder(t *testing.T) {
	p := newTestPool(t, 4)
	a, _ := p.Acquire()
	b, _ := p.Acquire()
	c, _ := p.Acquire()

	view := p.ActiveView()
	if len(view) != 3 || view[0] != a || view[1] != b || view[2] != c {
		t.Fatal("ActiveView is not in acquisition order")
	}

	p.Release(b)
	view = p.ActiveView()
	if len(view) != 2 || view[0] != a || view[1] != c {
		t.Error("ActiveView order not preserved after releasing the middle object")
	}
	checkPartitions(t, p)
}

func TestPartitionInvariantUnderChurn(t *testing.T) {
	p := newTestPool(t, 6)
	var held []*poolItem
	for i := 0; i < 50; i++ {
		if i%3 == 2 && len(held) > 0 {
			p.Release(held[0])
			held = held[1:]
		} else if obj, ok := p.Acquire(); ok {
			held = append(held, obj)
		}
		checkPartitions(t, p)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
