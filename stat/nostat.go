//go:build nostat

package stat

// No-op counterparts with the exact public surface of the real types.
// Selected by building with `-tags nostat`: every operation compiles to
// nothing, no directory entry is ever created, aggregates are always
// zero. User stats are unaffected, they carry no hot-path cost.

// Enabled reports whether instrumentation is compiled in.
const Enabled = false

// GlobalCounter is the disabled counterpart of the counter registry
// entry. It keeps the name and description so reflection-style use of
// Name/Desc keeps working, but never touches a directory.
type GlobalCounter struct {
	name string
	desc string
}

func NewCounter(name, desc string) *GlobalCounter {
	mustName(name)
	return &GlobalCounter{name: name, desc: desc}
}

func (g *GlobalCounter) Name() string          { return g.name }
func (g *GlobalCounter) Desc() string          { return g.desc }
func (g *GlobalCounter) Aggregate() CounterAgg { return 0 }
func (g *GlobalCounter) Close()                {}

type LocalCounter struct{}

var sharedLocalCounter LocalCounter

func NewLocalCounter(*GlobalCounter) *LocalCounter { return &sharedLocalCounter }

func (l *LocalCounter) Add(uint64)             {}
func (l *LocalCounter) Inc()                   {}
func (l *LocalCounter) Dec()                   {}
func (l *LocalCounter) Global() *GlobalCounter { return nil }
func (l *LocalCounter) Close()                 {}

// GlobalTimer is the disabled counterpart of the timer registry entry.
type GlobalTimer struct {
	name string
	desc string
}

func NewTimer(name, desc string) *GlobalTimer {
	mustName(name)
	return &GlobalTimer{name: name, desc: desc}
}

func (g *GlobalTimer) Name() string        { return g.name }
func (g *GlobalTimer) Desc() string        { return g.desc }
func (g *GlobalTimer) Aggregate() TimerAgg { return TimerAgg{} }
func (g *GlobalTimer) Close()              {}

type LocalTimer struct{}

var sharedLocalTimer LocalTimer

func NewLocalTimer(*GlobalTimer) *LocalTimer { return &sharedLocalTimer }

func (l *LocalTimer) Add(uint64)           {}
func (l *LocalTimer) Global() *GlobalTimer { return nil }
func (l *LocalTimer) Close()               {}

var noopStop = func() {}

func (l *LocalTimer) StartScope() (stop func()) { return noopStop }

type Stopwatch struct{}

func StartWatch(*LocalTimer) Stopwatch { return Stopwatch{} }

func (s *Stopwatch) Resume()  {}
func (s *Stopwatch) Restart() {}
func (s *Stopwatch) Pause()   {}
func (s *Stopwatch) Stop()    {}

func ListCounters() []CounterEntry { return nil }
func ListTimers() []TimerEntry     { return nil }
