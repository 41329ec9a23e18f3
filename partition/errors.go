// SPDX-License-Identifier: MIT
// Package partition: sentinel error set, matched via errors.Is.
package partition

import "errors"

var (
	// ErrWorkerCount indicates a non-positive worker count.
	ErrWorkerCount = errors.New("partition: worker count must be at least 1")

	// ErrTooManyWorkers indicates more workers than mutable slots; a split
	// would produce empty or negative-sized ranges.
	ErrTooManyWorkers = errors.New("partition: worker count exceeds mutable slot count")
)
