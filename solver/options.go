// Package solver: run configuration and instrumentation hooks.
package solver

import (
	"math"
	"runtime"
)

// DefaultPrecision is the decimal precision used by DefaultOptions
// (threshold 10⁻⁴).
const DefaultPrecision = 4

// Hooks carries optional per-phase instrumentation callbacks, invoked by the
// coordinator only, from a single goroutine, with the 1-based cycle number.
// Any field may be nil. The solver performs no I/O itself; wall-clock
// recording and formatting belong to the collaborator installing the hooks.
type Hooks struct {
	RelaxStart  func(cycle int)
	RelaxEnd    func(cycle int)
	CommitStart func(cycle int)
	CommitEnd   func(cycle int)
}

// nil-safe invocation helpers; the coordinator calls these unconditionally.

func (h Hooks) relaxStart(c int) {
	if h.RelaxStart != nil {
		h.RelaxStart(c)
	}
}

func (h Hooks) relaxEnd(c int) {
	if h.RelaxEnd != nil {
		h.RelaxEnd(c)
	}
}

func (h Hooks) commitStart(c int) {
	if h.CommitStart != nil {
		h.CommitStart(c)
	}
}

func (h Hooks) commitEnd(c int) {
	if h.CommitEnd != nil {
		h.CommitEnd(c)
	}
}

// Options configures a relaxation run.
//
// Fields:
//   - Workers   — worker goroutine count; the interior is split into up to
//     this many blocks. Must be ≥ 1 and ≤ the mutable slot count.
//   - Precision — decimal precision p ≥ 1; the convergence threshold is
//     10^-p, derived once and immutable for the run.
//   - MaxCycles — optional safety bound; ≤ 0 means unbounded. When the bound
//     is hit the run stops after committing that cycle and reports
//     ErrNoConvergence instead of iterating forever.
//   - Hooks     — optional phase instrumentation, see Hooks.
//
// Example:
//
//	opts := solver.DefaultOptions()
//	opts.Precision = 6
//	opts.MaxCycles = 100_000
//	res, err := solver.Solve(g, &opts)
type Options struct {
	Workers   int
	Precision int
	MaxCycles int
	Hooks     Hooks
}

// DefaultOptions returns Options with Workers=runtime.NumCPU(),
// Precision=DefaultPrecision, no cycle bound and no hooks.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.NumCPU(),
		Precision: DefaultPrecision,
	}
}

// Threshold returns the convergence threshold 10^-Precision.
// Complexity: O(1).
func (o Options) Threshold() float64 {
	return math.Pow(0.1, float64(o.Precision))
}
