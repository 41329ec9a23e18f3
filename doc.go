// Package relax is a parallel Jacobi relaxation solver for dense square
// grids with a fixed top-row/left-column boundary.
//
// 🚀 What is relax?
//
//	A small, focused library that iteratively replaces every interior cell
//	of an N×N grid with the mean of its four axis-adjacent neighbours until
//	no cell moves by more than a configurable precision threshold:
//		• Static block partitioning of the mutable interior
//		• One goroutine per block, double-buffered relaxation
//		• Two-phase barrier protocol deciding commit-or-stop once per cycle
//
// ✨ Why choose relax?
//
//   - Deterministic – identical results for any worker count
//   - Race-free by construction – the grid is read-only while workers relax
//     and written only by the coordinator between barriers
//   - Pure Go – no cgo, no hidden deps in the core
//
// Everything is organized under four subpackages:
//
//	grid/      — the N×N buffer, boundary invariant and index helpers
//	partition/ — static block partitioner over the mutable interior
//	solver/    — the barrier-synchronized relaxation loop itself
//	render/    — terminal dumps of grids and block ownership
//
// Quick ASCII example (size=3 after convergence):
//
//	1.0  1.0  1.0
//	1.0  0.5  0.0
//	1.0  0.0  0.0
//
// Dive into README.md for full examples, and into cmd/relax for the CLI.
//
//	go get github.com/katalvlaran/relax
package relax
