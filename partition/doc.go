// Package partition computes the static block decomposition of a grid's
// mutable interior for a fixed set of workers.
//
// What:
//
//   - Block is a contiguous, exclusively-owned inclusive range of linear
//     grid indices plus a private zero-initialized scratch buffer.
//   - Split carves the interior window [size, size²−size−1] into blocks of
//     near-equal length: equal blocks of E = ceil(M/workers) slots, with a
//     final block absorbing any remainder.
//
// Why:
//
//   - One block per worker goroutine removes all write sharing during a
//     relaxation pass: each worker reads the grid and writes only its own
//     scratch buffer.
//   - The scratch buffer doubles as the "previous value" basis for the next
//     cycle's change test, so it persists across cycles.
//
// Invariants (enforced and property-tested):
//
//   - Blocks are pairwise disjoint and emitted in increasing order.
//   - Their union equals the interior window exactly: no gaps, no overlaps.
//   - Partition sizes are within one block of equal.
//
// Complexity:
//
//   - Split: O(workers) time, O(M) memory for scratch buffers.
//
// Errors:
//
//   - ErrWorkerCount: workers < 1.
//   - ErrTooManyWorkers: workers exceed the mutable slot count, which would
//     force empty or negative-sized ranges.
package partition
