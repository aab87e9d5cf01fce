//go:build !nostat

package stat

// GlobalCounter is the registry entry for one named counter category.
type GlobalCounter = Global[*LocalCounter, CounterAgg]

// NewCounter declares a counter category and registers it in the
// process-wide counter directory. Panics on an empty name: a bad
// declaration is a programmer error and is caught at startup.
func NewCounter(name, desc string) *GlobalCounter {
	return newGlobal[*LocalCounter, CounterAgg](name, desc, counterDir)
}

// LocalCounter accumulates counts for one goroutine. It is owned by the
// goroutine that created it: all mutation is unsynchronized, the registry
// only ever folds its value under the entry lock. Close it when the
// owning goroutine is done so its total retires into the global entry.
type LocalCounter struct {
	count  uint64
	global *GlobalCounter
}

// NewLocalCounter creates the calling goroutine's accumulator for g and
// registers it with the entry.
func NewLocalCounter(g *GlobalCounter) *LocalCounter {
	l := &LocalCounter{global: g}
	g.register(l)
	return l
}

// Add adds delta to the local count. No lock, wraps on overflow.
func (l *LocalCounter) Add(delta uint64) { l.count += delta }

// Inc adds one.
func (l *LocalCounter) Inc() { l.count++ }

// Dec subtracts one, wrapping per unsigned semantics.
func (l *LocalCounter) Dec() { l.count-- }

// Global returns the category this accumulator feeds.
func (l *LocalCounter) Global() *GlobalCounter { return l.global }

// Close retires the accumulator: its count folds into the global entry
// exactly once and it stops being visible to Aggregate. The accumulator
// must not be used afterwards.
func (l *LocalCounter) Close() {
	l.global.deregister(l)
}

func (l *LocalCounter) aggregate(prev CounterAgg) CounterAgg {
	return prev + l.count
}
