package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and CellError if a value
// lies outside [0, MaxCost].
// Algorithmic complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]uint8, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 || v > MaxCost {
				return nil, CellError{Row: r, Col: c, Value: v}
			}
			cells = append(cells, uint8(v))
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Parse builds a Grid from text holding one row of ASCII digits per line.
// Leading and trailing whitespace of every line, and blank lines around the
// block, are ignored; a blank line inside the block is an empty row.
func Parse(text string) (*Grid, error) {
	return parseLines(strings.Split(text, "\n"))
}

// Read is Parse over an io.Reader.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("grid: read input: %w", err)
		}
	}

	return parseLines(lines)
}

func parseLines(lines []string) (*Grid, error) {
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(lines))
	for r, line := range lines {
		row := make([]int, 0, len(line))
		c := 0
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, CellError{Row: r, Col: c, Char: ch}
			}
			row = append(row, int(ch-'0'))
			c++
		}
		values[r] = row
	}

	return New(values)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CostAt returns the movement cost of entering (row, col).
// Returns ErrOutOfBounds if the coordinates lie outside the grid.
// Complexity: O(1).
func (g *Grid) CostAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	return int(g.cells[g.index(row, col)]), nil
}

// Step returns the cell one unit away from (row, col) in direction d.
// ok is false when the move would leave the grid or d is None.
// Complexity: O(1).
func (g *Grid) Step(d Direction, row, col int) (nr, nc int, ok bool) {
	dr, dc := d.Offset()
	if dr == 0 && dc == 0 {
		return row, col, false
	}
	nr, nc = row+dr, col+dc
	if !g.InBounds(nr, nc) {
		return row, col, false
	}

	return nr, nc, true
}

// String renders the grid back as lines of digits.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('0' + g.cells[g.index(r, c)])
		}
	}

	return sb.String()
}

// index maps (row, col) to a row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
