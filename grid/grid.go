package grid

// BoundaryValue is the fixed Dirichlet value applied to row 0 and column 0.
const BoundaryValue = 1.0

// MinSize is the smallest grid with a mutable interior.
const MinSize = 3

// Grid is a dense N×N buffer of float64 cells in row-major order.
// It is immutable except through Commit, which is reserved for the
// coordinator of a relaxation run and can never touch boundary cells.
type Grid struct {
	size  int
	cells []float64
}

// New constructs a size×size grid with the boundary rule applied:
// every cell with row 0 or column 0 holds BoundaryValue, all others 0.0.
// Returns ErrBadSize if size < MinSize (no interior to relax).
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, ErrBadSize
	}
	g := &Grid{
		size:  size,
		cells: make([]float64, size*size),
	}
	for col := 0; col < size; col++ {
		g.cells[col] = BoundaryValue
	}
	for row := 1; row < size; row++ {
		g.cells[row*size] = BoundaryValue
	}

	return g, nil
}

// Size returns the grid dimension N.
// Complexity: O(1).
func (g *Grid) Size() int { return g.size }

// Index maps (row, col) to the row-major linear index.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int { return row*g.size + col }

// Coordinate maps a linear index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (row, col int) { return i / g.size, i % g.size }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At retrieves the cell at (row, col).
// Returns ErrOutOfRange for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) At(row, col int) (float64, error) {
	if !g.InBounds(row, col) {
		return 0, ErrOutOfRange
	}

	return g.cells[g.Index(row, col)], nil
}

// AtIndex retrieves the cell at linear index i.
// Returns ErrOutOfRange for indices outside the buffer.
// Complexity: O(1).
func (g *Grid) AtIndex(i int) (float64, error) {
	if i < 0 || i >= len(g.cells) {
		return 0, ErrOutOfRange
	}

	return g.cells[i], nil
}

// Cell is the unchecked fast-path accessor used inside the relaxation loop,
// where indices are valid by the partition invariant. Callers outside that
// loop should prefer At/AtIndex.
func (g *Grid) Cell(i int) float64 { return g.cells[i] }

// Values returns a copy of the whole buffer, a read-only view for
// instrumentation and rendering collaborators.
// Complexity: O(size²).
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.cells))
	copy(out, g.cells)

	return out
}

// Interior returns the inclusive linear index range [lo, hi] covering every
// mutable-interior slot: all cells outside the first and last full rows.
// Left/right column cells inside this range are pass-through slots, never
// relaxed (see IsEdgeColumn).
// Complexity: O(1).
func (g *Grid) Interior() (lo, hi int) {
	return g.size, g.size*g.size - g.size - 1
}

// MutableCount returns the number of slots in the Interior range,
// size²−2·size.
// Complexity: O(1).
func (g *Grid) MutableCount() int { return g.size*g.size - 2*g.size }

// IsBoundary reports whether linear index i lies on the fixed boundary
// (row 0 or column 0).
// Complexity: O(1).
func (g *Grid) IsBoundary(i int) bool {
	return i < g.size || i%g.size == 0
}

// IsEdgeColumn reports whether linear index i lies on the leftmost or
// rightmost column. Such slots have no valid left/right neighbour pair and
// are copied through unrelaxed.
// Complexity: O(1).
func (g *Grid) IsEdgeColumn(i int) bool {
	return i%g.size == 0 || (i+1)%g.size == 0
}

// IsMutable reports whether linear index i is eligible for relaxation:
// inside the Interior range and not on an edge column.
// Complexity: O(1).
func (g *Grid) IsMutable(i int) bool {
	lo, hi := g.Interior()

	return i >= lo && i <= hi && !g.IsEdgeColumn(i)
}

// NeighborMean returns the mean of the four axis-adjacent cells of i.
// Only meaningful for mutable indices; the caller guarantees IsMutable(i).
// Complexity: O(1).
func (g *Grid) NeighborMean(i int) float64 {
	top := g.cells[i-g.size]
	right := g.cells[i+1]
	bottom := g.cells[i+g.size]
	left := g.cells[i-1]

	return (top + right + bottom + left) / 4
}

// Commit copies values over the slot range [start, start+len(values)-1],
// skipping edge-column slots so boundary cells are never altered. It is the
// single write path into the grid and is intended for the coordinator only,
// strictly between relaxation phases.
// Returns ErrOutOfRange if the range leaves the Interior window.
// Complexity: O(len(values)).
func (g *Grid) Commit(start int, values []float64) error {
	lo, hi := g.Interior()
	if start < lo || start+len(values)-1 > hi {
		return ErrOutOfRange
	}
	for off, v := range values {
		i := start + off
		if g.IsEdgeColumn(i) {
			continue
		}
		g.cells[i] = v
	}

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(size²).
func (g *Grid) Clone() *Grid {
	out := &Grid{
		size:  g.size,
		cells: make([]float64, len(g.cells)),
	}
	copy(out.cells, g.cells)

	return out
}
