//go:build !nostat

package stat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pinFrequency fixes the cycle-to-time conversion for the duration of a
// test so derived metrics are deterministic.
func pinFrequency(t *testing.T, ghz float64) {
	t.Helper()
	prev := frequencyGHz
	frequencyGHz = func() float64 { return ghz }
	t.Cleanup(func() { frequencyGHz = prev })
}

func TestTimer_AddAggregates(t *testing.T) {
	pinFrequency(t, 2.0)

	g := NewTimer("work", "unit of work")
	defer g.Close()

	l := NewLocalTimer(g)
	defer l.Close()
	for i := 0; i < 5; i++ {
		l.Add(1000)
	}

	agg := g.Aggregate()
	require.Equal(t, uint64(5), agg.Count)
	require.Equal(t, uint64(5000), agg.Cycles)

	avgCycles, ok := agg.AvgCycles()
	require.True(t, ok)
	require.Equal(t, uint64(1000), avgCycles)

	require.Equal(t, 2500.0, agg.TotalNanos())
	avgNanos, ok := agg.AvgNanos()
	require.True(t, ok)
	require.Equal(t, 500.0, avgNanos)
}

func TestTimerAgg_NoEvents(t *testing.T) {
	var agg TimerAgg

	_, ok := agg.AvgCycles()
	require.False(t, ok)
	_, ok = agg.AvgNanos()
	require.False(t, ok)
	require.Equal(t, 0.0, agg.TotalNanos())
}

func TestTimer_RetiredAndLiveFoldTogether(t *testing.T) {
	g := NewTimer("fold", "")
	defer g.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		l := NewLocalTimer(g)
		l.Add(300)
		l.Add(200)
		l.Close()
	}()
	<-done

	live := NewLocalTimer(g)
	defer live.Close()
	live.Add(500)

	agg := g.Aggregate()
	require.Equal(t, uint64(3), agg.Count)
	require.Equal(t, uint64(1000), agg.Cycles)
}

func TestNewTimer_EmptyNamePanics(t *testing.T) {
	require.Panics(t, func() { NewTimer("", "") })
}
