//go:build arm64 && fencedtsc

package tsc

func now() uint64 { return cntvctFenced() }

func sourceName() string { return "cntvct_el0+isb" }
