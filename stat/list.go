//go:build !nostat

package stat

// Per-kind process-wide directories. These are the only package-level
// mutable state besides the calibrated frequency in package tsc.
var (
	counterDir = newDirectory[*GlobalCounter]()
	timerDir   = newDirectory[*GlobalTimer]()
)

// ListCounters enumerates declared counter categories ordered by name,
// each with its aggregate at the time of the call. Duplicate names are
// all listed.
func ListCounters() []CounterEntry {
	entries := counterDir.snapshot()
	out := make([]CounterEntry, 0, len(entries))
	for _, g := range entries {
		out = append(out, CounterEntry{Name: g.Name(), Desc: g.Desc(), Total: g.Aggregate()})
	}
	return out
}

// ListTimers enumerates declared timer categories ordered by name.
func ListTimers() []TimerEntry {
	entries := timerDir.snapshot()
	out := make([]TimerEntry, 0, len(entries))
	for _, g := range entries {
		out = append(out, TimerEntry{Name: g.Name(), Desc: g.Desc(), Agg: g.Aggregate()})
	}
	return out
}
