package solver

import "github.com/katalvlaran/relax/grid"

// SolveSequential runs the identical relaxation on a single goroutine,
// sharing the block decomposition, relaxation step and commit path with
// Solve. It exists for callers that want no concurrency at all and as the
// reference the parallel path is cross-checked against: both must produce
// bit-identical grids and cycle counts for the same inputs.
func SolveSequential(g *grid.Grid, opts *Options) (*Result, error) {
	o, blocks, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	threshold := o.Threshold()

	cycle := 1
	for {
		o.Hooks.relaxStart(cycle)
		changed := false
		for bi := range blocks {
			if relaxBlock(g, &blocks[bi], threshold) {
				changed = true
			}
		}
		o.Hooks.relaxEnd(cycle)

		if !changed {
			return &Result{Cycles: cycle, Converged: true}, nil
		}

		o.Hooks.commitStart(cycle)
		for bi := range blocks {
			_ = g.Commit(blocks[bi].Start, blocks[bi].Scratch)
		}
		o.Hooks.commitEnd(cycle)

		if o.MaxCycles > 0 && cycle >= o.MaxCycles {
			return &Result{Cycles: cycle, Converged: false}, ErrNoConvergence
		}
		cycle++
	}
}
