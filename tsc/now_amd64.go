//go:build amd64 && !fencedtsc

package tsc

func now() uint64 { return rdtsc() }

func sourceName() string { return "rdtsc" }
