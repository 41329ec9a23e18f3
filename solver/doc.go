// Package solver runs the parallel Jacobi relaxation loop: a fixed pool of
// worker goroutines, one per partition block, driven by a coordinator
// through a two-phase barrier protocol.
//
// What:
//
//   - Solve relaxes a grid.Grid in place until no interior cell moves by
//     more than 10^-Precision between cycles, then reports cycle count.
//   - Each cycle: workers recompute their block into private scratch
//     buffers and flag any above-threshold change; after the first barrier
//     the coordinator aggregates the flag and either stops (converged) or
//     commits every scratch buffer into the grid; the second barrier then
//     releases the workers into the next cycle.
//   - SolveSequential is the single-threaded reference path sharing the
//     exact relaxation and commit code.
//
// Why two barriers:
//
//   - The grid is never written during the relax phase and never read by
//     workers during the commit phase. The pair of full rendezvous points
//     establishes that ordering without any locking on the grid itself.
//
// Convergence:
//
//   - The final cycle only proves stability; its scratch values are not
//     committed, so the observed grid reflects cycles−1 true updates.
//   - Change detection uses the absolute difference: relaxation can
//     legitimately decrease a value, and a signed test would falsely
//     converge on a still-moving monotonically decreasing sequence.
//
// Complexity:
//
//   - Per cycle: O(N²) work split across Workers goroutines, plus an O(N²)
//     single-threaded commit.
//
// Errors:
//
//   - ErrNilGrid, ErrPrecision surface before any goroutine starts, as do
//     partition.ErrWorkerCount / partition.ErrTooManyWorkers.
//   - ErrNoConvergence reports an exhausted MaxCycles bound; the partial
//     result is still returned and the grid holds the last committed state.
package solver
