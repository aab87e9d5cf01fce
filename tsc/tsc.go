// Package tsc reads the hardware cycle counter (TSC on amd64, the
// virtual counter on arm64, a time.Now fallback elsewhere) and calibrates
// its frequency against the system clock once per process.
//
// Building with `-tags fencedtsc` selects the serializing read variant
// (RDTSCP / ISB-before-read): a little more overhead per read, but the
// sample is not skewed by in-flight out-of-order instructions. The choice
// is a whole-build one, call sites do not change.
package tsc

// Now returns the current cycle count.
func Now() uint64 { return now() }

// Since returns the cycles elapsed since start.
func Since(start uint64) uint64 { return now() - start }

// Source names the counter backing Now, e.g. "rdtsc" or "cntvct_el0".
func Source() string { return sourceName() }
