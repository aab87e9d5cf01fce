// Package stat implements named counters and timers that accumulate in
// goroutine-local instances with no lock on the hot path, while a
// per-category registry can produce an exact combined total at any time,
// including contributions from goroutines that already exited.
package stat

import (
	"sort"
	"sync"
)

// named is implemented by everything a directory can hold.
type named interface {
	comparable
	Name() string
	Desc() string
}

// directory is a process-wide set of declared stat entries of one kind.
// It has its own lock, separate from any entry's lock: it is touched only
// when a stat is declared or torn down and when a report enumerates
// entries, never on the accumulation hot path.
//
// Duplicate names are accepted and all stored; listing shows every entry.
// Names are expected to be unique per process, ambiguity on collision is
// the caller's problem.
type directory[E named] struct {
	mu      sync.Mutex
	entries []E // declaration order
}

func newDirectory[E named]() *directory[E] {
	return &directory[E]{}
}

func (d *directory[E]) add(e E) {
	d.mu.Lock()
	d.entries = append(d.entries, e)
	d.mu.Unlock()
}

// remove drops the first entry identical to e. Removing an entry that was
// never added is a no-op.
func (d *directory[E]) remove(e E) {
	d.mu.Lock()
	for i, cur := range d.entries {
		if cur == e {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
}

// snapshot returns a copy of the current entries ordered by name, with
// declaration order preserved among duplicates.
func (d *directory[E]) snapshot() []E {
	d.mu.Lock()
	out := make([]E, len(d.entries))
	copy(out, d.entries)
	d.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func (d *directory[E]) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func mustName(name string) {
	if name == "" {
		panic("stat: empty stat name")
	}
}
