//go:build !nostat

package stat

// GlobalTimer is the registry entry for one named timer category.
type GlobalTimer = Global[*LocalTimer, TimerAgg]

// NewTimer declares a timer category and registers it in the
// process-wide timer directory. Panics on an empty name.
func NewTimer(name, desc string) *GlobalTimer {
	return newGlobal[*LocalTimer, TimerAgg](name, desc, timerDir)
}

// LocalTimer accumulates elapsed cycles and event counts for one
// goroutine. Ownership rules are the same as LocalCounter: only the
// owning goroutine mutates it, the registry folds it under lock.
type LocalTimer struct {
	cycles uint64
	count  uint64
	global *GlobalTimer
}

// NewLocalTimer creates the calling goroutine's accumulator for g and
// registers it with the entry.
func NewLocalTimer(g *GlobalTimer) *LocalTimer {
	l := &LocalTimer{global: g}
	g.register(l)
	return l
}

// Add records one event that took deltaCycles.
func (l *LocalTimer) Add(deltaCycles uint64) {
	l.cycles += deltaCycles
	l.count++
}

// Global returns the category this accumulator feeds.
func (l *LocalTimer) Global() *GlobalTimer { return l.global }

// Close retires the accumulator into the global entry exactly once.
func (l *LocalTimer) Close() {
	l.global.deregister(l)
}

func (l *LocalTimer) aggregate(prev TimerAgg) TimerAgg {
	prev.Cycles += l.cycles
	prev.Count += l.count
	return prev
}
