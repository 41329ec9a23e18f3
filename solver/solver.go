package solver

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/relax/grid"
	"github.com/katalvlaran/relax/partition"
)

// Result reports the outcome of a relaxation run. The grid itself is
// mutated in place and read back through the *grid.Grid passed to Solve.
type Result struct {
	// Cycles is the number of relax→aggregate passes executed, including
	// the final pass that proved stability (which commits nothing).
	Cycles int
	// Converged is true when the run stopped because no cell moved beyond
	// the threshold, false when MaxCycles cut it short.
	Converged bool
}

// Solve relaxes g in place with a fixed pool of worker goroutines until
// convergence (or opts.MaxCycles). Configuration errors — nil grid, bad
// precision, incompatible worker count — surface before any goroutine
// starts. See the package documentation for the cycle protocol.
//
// Solve is deterministic: for a given grid size and precision the committed
// values are identical for any worker count, because every worker reads
// only the previous cycle's committed state.
func Solve(g *grid.Grid, opts *Options) (*Result, error) {
	o, blocks, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	s := &solver{
		g:         g,
		blocks:    blocks,
		threshold: o.Threshold(),
		maxCycles: o.MaxCycles,
		hooks:     o.Hooks,
	}

	return s.run(), s.err
}

// prepare validates inputs and builds the block decomposition. No goroutine
// is started here; every configuration error is fatal to the whole run.
func prepare(g *grid.Grid, opts *Options) (Options, []partition.Block, error) {
	if g == nil {
		return Options{}, nil, ErrNilGrid
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Precision < 1 {
		return Options{}, nil, ErrPrecision
	}

	blocks, err := partition.Split(g.Size(), o.Workers)
	if err != nil {
		return Options{}, nil, err
	}

	return o, blocks, nil
}

// solver owns the coordinator state for one parallel run.
type solver struct {
	g         *grid.Grid
	blocks    []partition.Block
	threshold float64
	maxCycles int
	hooks     Hooks

	// changed is the shared convergence flag: Store(true) by any worker
	// observing an above-threshold move, read and reset by the coordinator
	// strictly between the two barriers.
	changed atomic.Bool
	// stop tells workers, after the commit barrier, that the run is over.
	stop atomic.Bool

	// relaxDone is the rendezvous after the relax phase, commitDone the one
	// after the commit phase. All workers plus the coordinator participate
	// in both.
	relaxDone  *barrier
	commitDone *barrier

	err error
}

// run drives the cycle state machine:
// Idle → Relaxing → Aggregating → (Committing → Relaxing) | Done.
func (s *solver) run() *Result {
	parties := len(s.blocks) + 1
	s.relaxDone = newBarrier(parties)
	s.commitDone = newBarrier(parties)

	cycle := 1
	s.hooks.relaxStart(cycle)
	for bi := range s.blocks {
		go s.worker(&s.blocks[bi])
	}

	for {
		// Relaxing: workers compute; the coordinator just waits.
		s.relaxDone.Await()
		s.hooks.relaxEnd(cycle)

		// Aggregating: workers are parked at commitDone, so the flag and
		// the grid are exclusively ours until we arrive there too.
		if !s.changed.Load() {
			s.shutdown()

			return &Result{Cycles: cycle, Converged: true}
		}
		s.changed.Store(false)

		// Committing: scratch → grid, edge slots skipped inside Commit.
		s.hooks.commitStart(cycle)
		s.commit()
		s.hooks.commitEnd(cycle)

		if s.maxCycles > 0 && cycle >= s.maxCycles {
			s.shutdown()
			s.err = ErrNoConvergence

			return &Result{Cycles: cycle, Converged: false}
		}

		cycle++
		s.commitDone.Await()
		s.hooks.relaxStart(cycle)
	}
}

// worker relaxes one block per cycle for the lifetime of the run.
func (s *solver) worker(b *partition.Block) {
	for {
		if relaxBlock(s.g, b, s.threshold) {
			s.changed.Store(true)
		}
		s.relaxDone.Await()
		s.commitDone.Await()
		if s.stop.Load() {
			return
		}
	}
}

// shutdown releases the workers through the commit barrier with the stop
// flag raised so the pool drains cleanly.
func (s *solver) shutdown() {
	s.stop.Store(true)
	s.commitDone.Await()
}

// commit copies every block's scratch buffer into the grid. Ranges were
// validated by the partitioner, so Commit cannot fail here.
func (s *solver) commit() {
	for bi := range s.blocks {
		_ = s.g.Commit(s.blocks[bi].Start, s.blocks[bi].Scratch)
	}
}

// relaxBlock recomputes every slot of b into its scratch buffer from the
// current grid state and reports whether any cell moved beyond threshold
// relative to the scratch value left by the previous cycle. Edge-column
// slots pass the grid value through without a change test; they are never
// averaged and never committed.
func relaxBlock(g *grid.Grid, b *partition.Block, threshold float64) bool {
	changed := false
	for i := b.Start; i <= b.End; i++ {
		slot := i - b.Start
		if g.IsEdgeColumn(i) {
			b.Scratch[slot] = g.Cell(i)

			continue
		}
		next := g.NeighborMean(i)
		if math.Abs(next-b.Scratch[slot]) > threshold {
			changed = true
		}
		b.Scratch[slot] = next
	}

	return changed
}
