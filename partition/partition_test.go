// Package partition_test verifies the static block decomposition invariants:
// exact coverage, disjointness, ordering and near-equal sizing.
package partition_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/relax/grid"
	"github.com/katalvlaran/relax/partition"
	"github.com/stretchr/testify/require"
)

// TestSplit_Errors verifies input validation before any allocation.
func TestSplit_Errors(t *testing.T) {
	cases := []struct {
		name          string
		size, workers int
		err           error
	}{
		{"SizeTooSmall", 2, 1, grid.ErrBadSize},
		{"ZeroWorkers", 5, 0, partition.ErrWorkerCount},
		{"NegativeWorkers", 5, -2, partition.ErrWorkerCount},
		{"MoreWorkersThanSlots", 3, 4, partition.ErrTooManyWorkers}, // M=3
		{"WayTooManyWorkers", 4, 100, partition.ErrTooManyWorkers},  // M=8
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.Split(tc.size, tc.workers)
			if !errors.Is(err, tc.err) {
				t.Errorf("Split(%d,%d) error = %v; want %v", tc.size, tc.workers, err, tc.err)
			}
		})
	}
}

// TestSplit_CoverageAndDisjointness sweeps (size, workers) pairs and checks
// that blocks are ordered, non-empty, pairwise disjoint, and cover the
// interior window [size, size²−size−1] exactly.
func TestSplit_CoverageAndDisjointness(t *testing.T) {
	for size := 3; size <= 12; size++ {
		mutable := size*size - 2*size
		for workers := 1; workers <= mutable; workers++ {
			blocks, err := partition.Split(size, workers)
			require.NoError(t, err, "Split(%d,%d)", size, workers)
			require.NotEmpty(t, blocks)
			require.LessOrEqual(t, len(blocks), workers)

			covered := 0
			next := size // first interior index
			for bi, b := range blocks {
				require.Equal(t, next, b.Start, "Split(%d,%d) block %d start", size, workers, bi)
				require.GreaterOrEqual(t, b.End, b.Start, "Split(%d,%d) block %d empty", size, workers, bi)
				require.Len(t, b.Scratch, b.Len())
				covered += b.Len()
				next = b.End + 1
			}
			require.Equal(t, size*size-size-1, blocks[len(blocks)-1].End,
				"Split(%d,%d) must end at the last interior index", size, workers)
			require.Equal(t, mutable, covered, "Split(%d,%d) coverage", size, workers)
		}
	}
}

// TestSplit_NearEqualSizing checks that all blocks except the last share one
// length and the last is never longer.
func TestSplit_NearEqualSizing(t *testing.T) {
	for size := 3; size <= 10; size++ {
		mutable := size*size - 2*size
		for workers := 1; workers <= mutable; workers++ {
			blocks, _ := partition.Split(size, workers)
			equalLen := blocks[0].Len()
			for bi, b := range blocks[:len(blocks)-1] {
				require.Equal(t, equalLen, b.Len(), "Split(%d,%d) block %d", size, workers, bi)
			}
			require.LessOrEqual(t, blocks[len(blocks)-1].Len(), equalLen)
		}
	}
}

// TestSplit_Degenerate covers the smallest grid: three interior slots, of
// which only the centre is ever relaxed. Three workers still get a legal,
// exactly-covering decomposition with no double counting.
func TestSplit_Degenerate(t *testing.T) {
	blocks, err := partition.Split(3, 3)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for bi, b := range blocks {
		require.Equal(t, 3+bi, b.Start)
		require.Equal(t, 3+bi, b.End)
		require.Equal(t, 1, b.Len())
	}
}

// TestSplit_RemainderBlock pins the remainder arithmetic on a concrete case:
// size=5 (M=15), workers=4 → E=4, three equal blocks and one of length 3.
func TestSplit_RemainderBlock(t *testing.T) {
	blocks, err := partition.Split(5, 4)
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	wantLens := []int{4, 4, 4, 3}
	for bi, b := range blocks {
		require.Equal(t, wantLens[bi], b.Len(), "block %d", bi)
	}
	require.Equal(t, 5, blocks[0].Start)
	require.Equal(t, 19, blocks[3].End)
}

// TestBlock_Helpers exercises Len and Contains.
func TestBlock_Helpers(t *testing.T) {
	b := partition.Block{Start: 5, End: 8, Scratch: make([]float64, 4)}
	require.Equal(t, 4, b.Len())
	require.False(t, b.Contains(4))
	require.True(t, b.Contains(5))
	require.True(t, b.Contains(8))
	require.False(t, b.Contains(9))
}

// TestSplit_ScratchZeroInitialized verifies the deterministic first-cycle
// contract: every scratch slot starts at exactly 0.
func TestSplit_ScratchZeroInitialized(t *testing.T) {
	blocks, err := partition.Split(6, 3)
	require.NoError(t, err)
	for _, b := range blocks {
		for slot, v := range b.Scratch {
			require.Zero(t, v, "block [%d,%d] slot %d", b.Start, b.End, slot)
		}
	}
}
