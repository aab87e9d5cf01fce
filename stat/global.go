//go:build !nostat

package stat

import "sync"

// Enabled reports whether instrumentation is compiled in. Building with
// the `nostat` tag replaces every type in this package with a no-op
// counterpart and flips this to false.
const Enabled = true

// local is the contract between a Global registry entry and the
// goroutine-local accumulators feeding it. aggregate folds the
// accumulator's current value into prev and returns the result; it only
// reads accumulator state.
type local[A any] interface {
	comparable
	aggregate(prev A) A
}

// Global is one named stat category. It tracks the set of live local
// accumulators plus the folded total of accumulators already closed, so
// that Aggregate is exact across worker teardown.
//
// A Global must not be copied after construction: its address is the
// rendezvous point between the owning goroutines and the reporting side.
type Global[I local[A], A any] struct {
	name string
	desc string

	mu      sync.Mutex
	live    map[I]struct{}
	retired A

	dir *directory[*Global[I, A]]
}

func newGlobal[I local[A], A any](name, desc string, dir *directory[*Global[I, A]]) *Global[I, A] {
	mustName(name)
	g := &Global[I, A]{
		name: name,
		desc: desc,
		live: make(map[I]struct{}),
		dir:  dir,
	}
	dir.add(g)
	return g
}

func (g *Global[I, A]) Name() string { return g.name }
func (g *Global[I, A]) Desc() string { return g.desc }

// register adds a freshly constructed local accumulator to the live set.
// Called exactly once per accumulator, by its constructor.
func (g *Global[I, A]) register(i I) {
	g.mu.Lock()
	g.live[i] = struct{}{}
	g.mu.Unlock()
}

// deregister folds i's current value into the retired total and drops it
// from the live set, under one lock acquisition, so a concurrent
// Aggregate never observes the value twice or not at all. A second
// deregister of the same accumulator is ignored.
func (g *Global[I, A]) deregister(i I) {
	g.mu.Lock()
	if _, ok := g.live[i]; ok {
		g.retired = i.aggregate(g.retired)
		delete(g.live, i)
	}
	g.mu.Unlock()
}

// Aggregate returns the retired total folded with every live
// accumulator's current value. The live set is observed at a single
// locked instant; each accumulator's contribution is folded whole, so
// the result may miss adds still in flight on other goroutines but never
// double counts.
func (g *Global[I, A]) Aggregate() A {
	g.mu.Lock()
	defer g.mu.Unlock()
	agg := g.retired
	for i := range g.live {
		agg = i.aggregate(agg)
	}
	return agg
}

// Close removes the category from the process-wide directory. Meant for
// process teardown and tests; accumulators still holding the entry keep
// working, the entry just stops being listed.
func (g *Global[I, A]) Close() {
	g.dir.remove(g)
}
