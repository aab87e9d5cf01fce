//go:build arm64 && !fencedtsc

package tsc

func now() uint64 { return cntvct() }

func sourceName() string { return "cntvct_el0" }
