//go:build !amd64 && !arm64

package tsc

import "time"

// Fallback for platforms without a supported cycle counter: nanoseconds
// since package init, so "cycles" tick at exactly 1 GHz.

var genericEpoch = time.Now()

func now() uint64 { return uint64(time.Since(genericEpoch).Nanoseconds()) }

func sourceName() string { return "time.Now" }

func counterFreqHz() uint64 { return 1_000_000_000 }
