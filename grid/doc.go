// Package grid holds the immutable cost matrix that the constrained search
// walks over, together with the compass Direction type used to describe moves.
//
// What:
//
//   - Grid wraps a rectangular matrix of single-digit movement costs (0..9).
//   - Cells are addressed as (row, col) with (0, 0) at the top-left corner.
//   - Direction enumerates North, South, East and West, plus None for the
//     synthetic start state of a search that has not moved yet.
//
// Why:
//
//   - A Grid is read-only after construction, so one Grid can be shared by any
//     number of concurrent searches as long as each owns its own bookkeeping.
//   - Step performs every bounds check, so search code never calls CostAt with
//     coordinates outside the grid.
//
// Complexity:
//
//   - New, Parse, Read: O(R×C) time and memory.
//   - CostAt, InBounds, Step, Opposite: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - CellError: a cell is not a digit in [0, 9].
//   - ErrOutOfBounds: CostAt was called outside [0, rows) × [0, cols).
//
// Example input accepted by Parse:
//
//	2413432311323
//	3215453535623
//	3255245654254
package grid
