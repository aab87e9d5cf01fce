//go:build !nostat

package stat

import "github.com/egnchen/hwstat/tsc"

// Stopwatch measures elapsed cycles against a LocalTimer. It is a value
// type meant to live on the stack of the measured scope; it is not safe
// to share across goroutines. Cycles accumulate locally across
// Pause/Resume segments and only reach the timer on Stop.
type Stopwatch struct {
	timer *LocalTimer
	now   func() uint64
	mark  uint64
	total uint64
}

// StartWatch returns a running stopwatch for t.
func StartWatch(t *LocalTimer) Stopwatch {
	sw := Stopwatch{timer: t, now: tsc.Now}
	sw.Restart()
	return sw
}

// Resume records the current cycle count as the new start mark.
func (s *Stopwatch) Resume() { s.mark = s.now() }

// Restart is Resume under the name used when beginning a fresh
// measurement, in particular after Stop.
func (s *Stopwatch) Restart() { s.Resume() }

// Pause adds the cycles elapsed since the last mark to the running total
// without committing anything to the timer.
func (s *Stopwatch) Pause() { s.total += s.now() - s.mark }

// Stop pauses, commits the running total to the timer as one event and
// zeroes the total. Reusing the stopwatch afterwards is only valid after
// Restart.
func (s *Stopwatch) Stop() {
	s.Pause()
	s.timer.Add(s.total)
	s.total = 0
}

// StartScope starts timing and returns a stop function for the caller to
// defer. The stop function commits exactly once, on whichever exit path
// runs it first (normal return, early return or panic unwinding); later
// calls are no-ops.
func (t *LocalTimer) StartScope() (stop func()) {
	sw := StartWatch(t)
	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		sw.Stop()
	}
}
