//go:build amd64

package tsc

// rdtsc reads the time stamp counter. Implemented in tsc_amd64.s.
//
//go:noescape
func rdtsc() uint64

// rdtscp is the serializing read: the pipeline drains before the counter
// is sampled. Implemented in tsc_amd64.s.
//
//go:noescape
func rdtscp() uint64

// counterFreqHz returns 0: the TSC frequency is not architecturally
// reported, it has to be calibrated.
func counterFreqHz() uint64 { return 0 }
