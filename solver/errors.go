// SPDX-License-Identifier: MIT
// Package solver: sentinel error set, matched via errors.Is. Partition and
// grid construction failures pass through from their own packages unwrapped.
package solver

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a solve entry point.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrPrecision indicates a decimal precision below 1; the derived
	// threshold would never permit convergence to be meaningful.
	ErrPrecision = errors.New("solver: precision must be at least 1")

	// ErrNoConvergence reports that the MaxCycles safety bound was reached
	// before the grid stabilized. The returned Result and the grid's last
	// committed state are still valid.
	ErrNoConvergence = errors.New("solver: no convergence within cycle bound")
)
