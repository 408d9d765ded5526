package grid

import (
	"errors"
	"fmt"
)

// MaxCost is the largest movement cost a cell may hold.
const MaxCost = 9

// Sentinel errors for grid operations.
var (
	// ErrMalformedGrid is wrapped by every construction error.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrOutOfBounds indicates a lookup outside [0, rows) × [0, cols).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// CellError is returned when a cell does not hold a digit in [0, MaxCost].
// Value carries the offending number; Char is set instead when the cell came
// from text and was not a digit at all.
type CellError struct {
	Row, Col int
	Value    int
	Char     rune
}

func (e CellError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("grid: cell (%d,%d) holds %q, want a digit 0-%d", e.Row, e.Col, e.Char, MaxCost)
	}

	return fmt.Sprintf("grid: cell (%d,%d) holds %d, want 0-%d", e.Row, e.Col, e.Value, MaxCost)
}

// Unwrap lets errors.Is(err, ErrMalformedGrid) match a CellError.
func (e CellError) Unwrap() error { return ErrMalformedGrid }

// Cell is a (Row, Col) coordinate pair.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a compass heading. The zero value None marks a state that has
// not moved yet. The declaration order is also the ordering used to break
// ties between otherwise equal search states.
type Direction uint8

const (
	// None is the direction of the synthetic start state.
	None Direction = iota
	// North decreases the row.
	North
	// South increases the row.
	South
	// East increases the column.
	East
	// West decreases the column.
	West
)

// Compass lists the four real directions in declaration order.
var Compass = [4]Direction{North, South, East, West}

// Grid treats a 2D matrix of movement costs as the terrain of a search.
// It is immutable once built; cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []uint8
}
