package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/relax/grid"
	"github.com/katalvlaran/relax/partition"
)

// palette cycles through the six classic ANSI hues for block ownership.
var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
}

// Table renders every cell with six decimal places, one grid row per line.
// Complexity: O(N²).
func Table(g *grid.Grid) string {
	var sb strings.Builder
	size := g.Size()
	vals := g.Values()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%f", vals[row*size+col])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Blocks renders the grid like Table but tints each cell with the color of
// the block owning its index; boundary and other unowned cells stay plain.
// Complexity: O(N²·blocks) owner lookups, fine for debug output.
func Blocks(g *grid.Grid, blocks []partition.Block) string {
	var sb strings.Builder
	size := g.Size()
	vals := g.Values()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			i := row*size + col
			cell := fmt.Sprintf("%f", vals[i])
			if owner := owningBlock(blocks, i); owner >= 0 {
				cell = palette[owner%len(palette)].Render(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BlockList renders one line per block with its range and length.
func BlockList(blocks []partition.Block) string {
	var sb strings.Builder
	for i := range blocks {
		b := &blocks[i]
		fmt.Fprintf(&sb, "block %d: start=%d end=%d len=%d\n", i, b.Start, b.End, b.Len())
	}

	return sb.String()
}

// owningBlock returns the index of the block containing i, or -1.
func owningBlock(blocks []partition.Block, i int) int {
	for bi := range blocks {
		if blocks[bi].Contains(i) {
			return bi
		}
	}

	return -1
}
