//go:build amd64 && fencedtsc

package tsc

func now() uint64 { return rdtscp() }

func sourceName() string { return "rdtscp" }
