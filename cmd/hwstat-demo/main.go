package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/egnchen/hwstat/internal/log"
	"github.com/egnchen/hwstat/report"
	"github.com/egnchen/hwstat/stat"
	"github.com/egnchen/hwstat/tsc"
)

// Declared once per process, like any instrumented application would.
var (
	gReqs = stat.NewCounter("reqs", "requests handled")
	gWork = stat.NewTimer("work", "time spent in one unit of work")
)

var sink uint64

func main() {
	configPath := flag.String("config", "", "report config file (YAML)")
	workers := flag.Int("workers", 4, "number of worker goroutines")
	duration := flag.Duration("duration", 3*time.Second, "run time")
	flag.Parse()

	cfg, err := report.LoadConfig(*configPath)
	if err != nil {
		log.Provide().Error("bad config", zap.Error(err))
		os.Exit(1)
	}
	logger := log.New(log.ParseLevel(cfg.LogLevel))
	logger.Info("starting demo",
		zap.String("tsc_source", tsc.Source()),
		zap.Int("workers", *workers))

	goroutines := stat.NewUserStat("goroutines", func() string {
		return strconv.Itoa(runtime.NumGoroutine())
	}, "live goroutines")
	defer goroutines.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	go report.NewReporter(logger, cfg).Run(ctx)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < *workers; i++ {
		g.Go(func() error {
			reqs := stat.NewLocalCounter(gReqs)
			defer reqs.Close()
			work := stat.NewLocalTimer(gWork)
			defer work.Close()
			for ctx.Err() == nil {
				stop := work.StartScope()
				spin()
				stop()
				reqs.Inc()
			}
			return nil
		})
	}
	_ = g.Wait()

	report.NewPrinter(logger).PrintAll()
}

func spin() {
	for i := uint64(0); i < 10_000; i++ {
		sink += i * i
	}
}
