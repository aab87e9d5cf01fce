//go:build arm64

package tsc

// cntvct reads the virtual counter (CNTVCT_EL0). Implemented in
// tsc_arm64.s.
//
//go:noescape
func cntvct() uint64

// cntvctFenced issues an ISB before reading the counter.
//
//go:noescape
func cntvctFenced() uint64

// cntfrq reads the counter frequency register (CNTFRQ_EL0).
//
//go:noescape
func cntfrq() uint64

// counterFreqHz returns the architecturally reported counter frequency,
// so arm64 normally skips sleep calibration entirely.
func counterFreqHz() uint64 { return cntfrq() }
