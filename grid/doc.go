// Package grid models the shared N×N buffer of a Jacobi relaxation run,
// including the fixed boundary invariant and all index arithmetic.
//
// What:
//
//   - Grid wraps a contiguous row-major []float64 of size*size cells.
//   - Row 0 and column 0 are fixed at 1.0 for the lifetime of the grid;
//     everything else starts at 0.0 and may only change through Commit.
//   - Named predicates (IsBoundary, IsEdgeColumn, IsMutable) centralize the
//     modulo arithmetic so callers never repeat off-by-one-prone index math.
//
// Why:
//
//   - Heat/potential diffusion: Dirichlet-style boundary held at a constant.
//   - A single owner of the write path: workers read, only the coordinator
//     commits, so the boundary invariant cannot be violated from outside.
//
// Complexity:
//
//   - New: O(N²) time and memory.
//   - At / AtIndex / predicates: O(1).
//   - Commit: O(len(values)).
//
// Errors:
//
//   - ErrBadSize: requested size has no interior (size < 3).
//   - ErrOutOfRange: cell or commit range outside the grid.
package grid
