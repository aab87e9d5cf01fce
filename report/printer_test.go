//go:build !nostat

package report

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/egnchen/hwstat/internal/log"
	"github.com/egnchen/hwstat/stat"
	"github.com/egnchen/hwstat/tsc"
)

func TestMain(m *testing.M) {
	// pin the frequency before anything triggers calibration so report
	// output is deterministic and the test binary skips the 10ms sleep
	os.Setenv(tsc.EnvFreqGHz, "2.0")
	os.Exit(m.Run())
}

func observedPrinter() (*Printer, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return NewPrinter(log.FromZap(zap.New(core))), logs
}

func loggedLines(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

func requireLineContaining(t *testing.T, lines []string, subs ...string) {
	t.Helper()
outer:
	for _, l := range lines {
		for _, s := range subs {
			if !strings.Contains(l, s) {
				continue outer
			}
		}
		return
	}
	t.Fatalf("no line containing %q in %q", subs, lines)
}

func TestPrinter_EmptySections(t *testing.T) {
	p, logs := observedPrinter()
	p.PrintAll()

	lines := loggedLines(logs)
	requireLineContaining(t, lines, "NO TIMERS")
	requireLineContaining(t, lines, "NO COUNTERS")
	requireLineContaining(t, lines, "NO USER STATS")
}

func TestPrinter_CounterRows(t *testing.T) {
	g := stat.NewCounter("requests", "handled requests")
	defer g.Close()
	l := stat.NewLocalCounter(g)
	defer l.Close()
	l.Add(42)

	p, logs := observedPrinter()
	p.PrintCounters()

	lines := loggedLines(logs)
	requireLineContaining(t, lines, "======COUNTERS======")
	requireLineContaining(t, lines, "NAME", "COUNT", "DESCRIPTION")
	requireLineContaining(t, lines, "requests", "42", "handled requests")
}

func TestPrinter_TimerRows(t *testing.T) {
	g := stat.NewTimer("work", "busy loop")
	defer g.Close()
	l := stat.NewLocalTimer(g)
	defer l.Close()
	for i := 0; i < 5; i++ {
		l.Add(1000)
	}

	p, logs := observedPrinter()
	p.PrintTimers()

	lines := loggedLines(logs)
	requireLineContaining(t, lines, "======TIMERS", "2Ghz")
	// 5000 cycles at 2GHz: 2.5us total, 500ns/1000 cycles average
	requireLineContaining(t, lines, "work", "2.5us", "1000 cycles", "busy loop")
	requireLineContaining(t, lines, "500ns")
}

func TestPrinter_TimerWithoutEventsShowsNA(t *testing.T) {
	g := stat.NewTimer("idle", "never fired")
	defer g.Close()

	p, logs := observedPrinter()
	p.PrintTimers()

	requireLineContaining(t, loggedLines(logs), "idle", "N/A")
}

func TestPrinter_UserStats(t *testing.T) {
	u := stat.NewUserStat("version", func() string { return "v1.2.3" }, "build version")
	defer u.Close()

	p, logs := observedPrinter()
	p.PrintUserStats()

	lines := loggedLines(logs)
	requireLineContaining(t, lines, "======USER STATS======")
	requireLineContaining(t, lines, "version", "v1.2.3", "build version")
}

func TestNameWidth(t *testing.T) {
	require.Equal(t, minNameWidth, nameWidth(nil))
	require.Equal(t, minNameWidth, nameWidth([]string{"ab"}))
	require.Equal(t, 14, nameWidth([]string{"ab", "twelve-chars"}))
}
