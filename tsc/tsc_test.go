package tsc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/egnchen/hwstat/internal/log"
)

func TestNow_AdvancesAcrossSleep(t *testing.T) {
	a := Now()
	time.Sleep(2 * time.Millisecond)
	b := Now()
	require.Greater(t, b, a)
}

func TestSince_GrowsAcrossSleep(t *testing.T) {
	start := Now()
	time.Sleep(2 * time.Millisecond)
	d := Since(start)
	require.Greater(t, d, uint64(0))
	require.GreaterOrEqual(t, Since(start), d)
}

func TestMeasureGHz_Positive(t *testing.T) {
	ghz := measureGHz(5 * time.Millisecond)
	require.Greater(t, ghz, 0.0)
	// anything outside this range is a broken clock, not a real CPU
	require.Less(t, ghz, 100.0)
}

func TestFreqGHz_PositiveAndCached(t *testing.T) {
	// first use resolves the frequency lazily; it must complete, not
	// park on logger initialization
	done := make(chan float64, 1)
	go func() { done <- FreqGHz() }()

	var first float64
	select {
	case first = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("FreqGHz did not return")
	}
	require.Greater(t, first, 0.0)
	require.Equal(t, first, FreqGHz())
}

func TestParseGHz(t *testing.T) {
	require.Equal(t, 2.3, parseGHz(log.Nop(), "2.3", "test"))
	require.Panics(t, func() { parseGHz(log.Nop(), "fast", "test") })
}

func TestSource_NonEmpty(t *testing.T) {
	require.NotEmpty(t, Source())
}
