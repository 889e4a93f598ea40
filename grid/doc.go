// Package grid models the search lattice used by the astar package.
//
// What:
//
//   - Cell is one lattice position with a traversal State and the transient
//     bookkeeping (gCost, hCost, parent handle) written by a search.
//   - Grid owns every Cell, indexes them by exact coordinate and tracks the two
//     designated endpoints in a FIFO list of capacity 2.
//   - Neighbors yields the eight surrounding cells lazily, in a fixed order that
//     the search depends on for tie-breaking.
//
// Coordinates:
//
//   - Cells live at integer coordinates spaced by the grid step (the cell size).
//     Distances are measured in coordinate units, so they scale with the step.
//   - Parent links are CellID handles, never pointers; NoCell marks "no parent".
//
// Builders:
//
//   - New + CreateCell: the caller populates the lattice cell by cell.
//   - NewLattice: a full width×height rectangle (defaults 1280×720, step 20).
//   - FromRows: an ASCII map ('.', '#', 'S', 'G').
//
// Errors:
//
//   - ErrBadStep, ErrCellExists, ErrEmptyGrid, ErrNonRectangular, ErrBadGlyph,
//     ErrTooManyEndpoints, ErrWallEndpoint, ErrOptionViolation.
//
// A Grid is not safe for concurrent mutation. Edits and searches must be
// serialised by the caller.
package grid
