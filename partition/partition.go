package partition

import "github.com/katalvlaran/relax/grid"

// Block is a contiguous inclusive range [Start, End] of linear grid indices
// owned exclusively by one worker, plus that worker's private scratch buffer.
// Scratch[i-Start] holds the most recently computed value for slot i and is
// zero-initialized so the very first change test is deterministic.
type Block struct {
	Start   int
	End     int
	Scratch []float64
}

// Len returns the number of slots in the block.
// Complexity: O(1).
func (b *Block) Len() int { return b.End - b.Start + 1 }

// Contains reports whether linear index i falls inside the block.
// Complexity: O(1).
func (b *Block) Contains(i int) bool { return i >= b.Start && i <= b.End }

// Split partitions the mutable interior of a size×size grid into blocks of
// near-equal length, one per worker, in increasing index order with no gaps.
//
// Let M = size²−2·size be the mutable slot count and E = ceil(M/workers) the
// equal block length. Split emits (M−M mod E)/E blocks of length E starting
// at index size; if a remainder is left, one final shorter block absorbs it,
// so coverage of the interior window is always exact. The decomposition is
// static: it is computed once and never rebalanced during a run.
//
// Split may return fewer blocks than workers when M mod E leaves no full
// remainder per worker; every returned block is non-empty.
//
// Returns grid.ErrBadSize for size < grid.MinSize, ErrWorkerCount for
// workers < 1, ErrTooManyWorkers when workers > M.
// Complexity: O(workers) time, O(M) scratch memory.
func Split(size, workers int) ([]Block, error) {
	if size < grid.MinSize {
		return nil, grid.ErrBadSize
	}
	if workers < 1 {
		return nil, ErrWorkerCount
	}

	mutable := size*size - 2*size
	if workers > mutable {
		return nil, ErrTooManyWorkers
	}

	equalLen := (mutable + workers - 1) / workers // ceil(M/workers)
	remainder := mutable % equalLen
	equalCount := (mutable - remainder) / equalLen

	lo, hi := size, size*size-size-1
	blocks := make([]Block, 0, equalCount+1)
	for i := 0; i < equalCount; i++ {
		start := lo + equalLen*i
		blocks = append(blocks, newBlock(start, start+equalLen-1))
	}
	if remainder != 0 {
		blocks = append(blocks, newBlock(lo+mutable-remainder, hi))
	}

	return blocks, nil
}

// newBlock allocates a block with its zero-initialized scratch buffer.
func newBlock(start, end int) Block {
	return Block{
		Start:   start,
		End:     end,
		Scratch: make([]float64, end-start+1),
	}
}
