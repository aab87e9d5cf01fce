package tsc

import (
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/egnchen/hwstat/internal/log"
)

// overrideGHz can be burned in at link time:
//
//	go build -ldflags "-X github.com/egnchen/hwstat/tsc.overrideGHz=2.3"
//
// It takes precedence over everything else and skips calibration.
var overrideGHz string

// EnvFreqGHz names the environment variable holding a frequency override
// in GHz, checked when no link-time override is present.
const EnvFreqGHz = "HWSTAT_TSC_GHZ"

// calibrationSleep is the wall-clock window the counter is measured
// against. First caller of FreqGHz pays this once per process.
const calibrationSleep = 10 * time.Millisecond

var (
	freqOnce sync.Once
	freqGHz  float64
)

// FreqGHz returns the cycle counter frequency in GHz. The value is
// resolved lazily on first call, in order of precedence: link-time
// override, environment override, architecturally reported frequency,
// sleep calibration. It is cached for the process lifetime and is the
// single source of truth for converting cycles to time.
//
// A zero or negative resolved frequency would make every derived time
// value meaningless, so it is reported once and the process panics.
func FreqGHz() float64 {
	freqOnce.Do(resolveFreq)
	return freqGHz
}

func resolveFreq() {
	logger := log.Provide()
	switch {
	case overrideGHz != "":
		freqGHz = parseGHz(logger, overrideGHz, "link-time override")
		logger.Info("predefined tsc frequency", zap.Float64("ghz", freqGHz))
	case os.Getenv(EnvFreqGHz) != "":
		freqGHz = parseGHz(logger, os.Getenv(EnvFreqGHz), EnvFreqGHz)
		logger.Info("predefined tsc frequency", zap.Float64("ghz", freqGHz))
	case counterFreqHz() != 0:
		freqGHz = float64(counterFreqHz()) / 1e9
		logger.Info("counter-reported frequency", zap.Float64("ghz", freqGHz))
	default:
		freqGHz = measureGHz(calibrationSleep)
		logger.Info("measured tsc frequency", zap.Float64("ghz", freqGHz))
	}
	if !(freqGHz > 0) {
		logger.Error("invalid cycle counter frequency", zap.Float64("ghz", freqGHz))
		panic("tsc: invalid cycle counter frequency")
	}
}

func parseGHz(logger log.Log, s, origin string) float64 {
	ghz, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.Error("bad frequency override", zap.String("origin", origin), zap.String("value", s), zap.Error(err))
		panic("tsc: bad frequency override " + strconv.Quote(s))
	}
	return ghz
}

// measureGHz times a short sleep against the counter: elapsed cycles over
// elapsed wall-clock nanoseconds is cycles-per-nanosecond, i.e. GHz.
func measureGHz(sleep time.Duration) float64 {
	startClk := time.Now()
	start := now()
	time.Sleep(sleep)
	cycles := Since(start)
	elapsed := time.Since(startClk)
	if elapsed <= 0 {
		return 0
	}
	return float64(cycles) / float64(elapsed.Nanoseconds())
}
