package stat

import "github.com/egnchen/hwstat/tsc"

// CounterAgg is the aggregate for counters: a plain running total.
// It wraps on overflow per ordinary unsigned-integer semantics.
type CounterAgg = uint64

// TimerAgg is the aggregate for timers: total elapsed cycles plus the
// number of recorded events. Both fields always travel together through a
// single fold, so the pair is internally consistent.
type TimerAgg struct {
	Cycles uint64
	Count  uint64
}

// frequencyGHz is indirected so tests can pin a known frequency.
var frequencyGHz = tsc.FreqGHz

// TotalNanos converts the accumulated cycles to wall-clock nanoseconds
// using the calibrated counter frequency.
func (a TimerAgg) TotalNanos() float64 {
	if a.Cycles == 0 {
		// avoids triggering calibration for an empty aggregate
		return 0
	}
	return float64(a.Cycles) / frequencyGHz()
}

// AvgCycles returns the mean cycles per event. ok is false when no event
// has been recorded.
func (a TimerAgg) AvgCycles() (avg uint64, ok bool) {
	if a.Count == 0 {
		return 0, false
	}
	return a.Cycles / a.Count, true
}

// AvgNanos returns the mean nanoseconds per event. ok is false when no
// event has been recorded.
func (a TimerAgg) AvgNanos() (avg float64, ok bool) {
	if a.Count == 0 {
		return 0, false
	}
	return a.TotalNanos() / float64(a.Count), true
}
