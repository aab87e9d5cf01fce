package report

import (
	"context"
	"time"

	"github.com/egnchen/hwstat/internal/log"
)

// Reporter prints all stats on a fixed interval until its context is
// cancelled.
type Reporter struct {
	printer  *Printer
	interval time.Duration
}

func NewReporter(l log.Log, cfg Config) *Reporter {
	return &Reporter{
		printer:  NewPrinter(l),
		interval: cfg.Interval,
	}
}

// Run blocks until ctx is done. With a non-positive interval it returns
// immediately: periodic reporting is disabled, on-demand printing still
// works through Printer.
func (r *Reporter) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.printer.PrintAll()
		}
	}
}
