// SPDX-License-Identifier: MIT
// Package grid: sentinel error set. All operations return these sentinels
// and tests match them via errors.Is; no operation panics on user input.
package grid

import "errors"

var (
	// ErrBadSize indicates the requested grid size has no mutable interior.
	ErrBadSize = errors.New("grid: size must be at least 3")

	// ErrOutOfRange indicates a cell index or commit range outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
