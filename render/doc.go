// Package render formats grids and block decompositions for the terminal.
// It is a debug/visualization collaborator: pure functions over the
// read-only views the core exposes (grid.Grid values, partition.Block
// ranges), no I/O of its own.
//
// What:
//
//   - Table: fixed-point dump of every cell, one grid row per line.
//   - Blocks: the same dump with each cell tinted by the block that owns
//     it, so the static decomposition is visible at a glance.
//   - BlockList: one entry per block with its index range and length.
//
// Styling uses lipgloss; whether color actually reaches the terminal is
// decided by the caller's color profile, not here.
package render
