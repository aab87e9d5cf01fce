package report

import (
	"fmt"
	"strconv"

	"github.com/egnchen/hwstat/internal/log"
	"github.com/egnchen/hwstat/stat"
	"github.com/egnchen/hwstat/tsc"
)

const minNameWidth = 8

// Printer renders the registered stats as aligned tables through the
// given logger, one row per line.
type Printer struct {
	log log.Log
}

func NewPrinter(l log.Log) *Printer {
	if l == nil {
		l = log.Provide()
	}
	return &Printer{log: l}
}

// PrintAll prints timers, counters and user stats. In a nostat build the
// timer and counter sections collapse into a single "stats disabled"
// line; user stats still print.
func (p *Printer) PrintAll() {
	if !stat.Enabled {
		p.log.Info("stats disabled")
		p.PrintUserStats()
		return
	}
	p.PrintTimers()
	p.PrintCounters()
	p.PrintUserStats()
}

func (p *Printer) PrintTimers() {
	if !stat.Enabled {
		p.log.Info("stats disabled")
		return
	}
	entries := stat.ListTimers()
	if len(entries) == 0 {
		p.log.Info("NO TIMERS")
		return
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	w := nameWidth(names)
	p.log.Info(fmt.Sprintf("======TIMERS(freq = %.3gGhz)======", tsc.FreqGHz()))
	p.log.Info(fmt.Sprintf("%-*sTIME\tCOUNT\tAVERAGE\t\tDESCRIPTION", w, "NAME"))
	for _, e := range entries {
		avgNanos, avgCycles := "N/A", "N/A"
		if v, ok := e.Agg.AvgNanos(); ok {
			avgNanos = FormatDuration(v)
		}
		if v, ok := e.Agg.AvgCycles(); ok {
			avgCycles = strconv.FormatUint(v, 10)
		}
		p.log.Info(fmt.Sprintf("%-*s%s\t%d\t%s(%s cycles)\t%s",
			w, e.Name, FormatDuration(e.Agg.TotalNanos()), e.Agg.Count, avgNanos, avgCycles, e.Desc))
	}
}

func (p *Printer) PrintCounters() {
	if !stat.Enabled {
		p.log.Info("stats disabled")
		return
	}
	entries := stat.ListCounters()
	if len(entries) == 0 {
		p.log.Info("NO COUNTERS")
		return
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	w := nameWidth(names)
	p.log.Info("======COUNTERS======")
	p.log.Info(fmt.Sprintf("%-*sCOUNT\tDESCRIPTION", w, "NAME"))
	for _, e := range entries {
		p.log.Info(fmt.Sprintf("%-*s%d\t%s", w, e.Name, e.Total, e.Desc))
	}
}

func (p *Printer) PrintUserStats() {
	entries := stat.ListUserStats()
	if len(entries) == 0 {
		p.log.Info("NO USER STATS")
		return
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	w := nameWidth(names)
	p.log.Info("======USER STATS======")
	p.log.Info(fmt.Sprintf("%-*sVALUE\tDESCRIPTION", w, "NAME"))
	for _, e := range entries {
		p.log.Info(fmt.Sprintf("%-*s%s\t%s", w, e.Name, e.Value, e.Desc))
	}
}

func nameWidth(names []string) int {
	w := minNameWidth
	for _, n := range names {
		if len(n)+2 > w {
			w = len(n) + 2
		}
	}
	return w
}
