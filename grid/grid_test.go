package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and out-of-range input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, grid.ErrMalformedGrid},
		{"TooLarge", [][]int{{1, 10}}, grid.ErrMalformedGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "New(%v) error = %v; want %v", tc.grid, err, tc.err)
			assert.True(t, errors.Is(err, grid.ErrMalformedGrid), "every construction error is a malformed grid")
		})
	}
}

// TestNew_CellError checks the offending coordinates are reported.
func TestNew_CellError(t *testing.T) {
	_, err := grid.New([][]int{{1, 2}, {3, 12}})
	var ce grid.CellError
	require.True(t, errors.As(err, &ce), "error must be CellError, got %v", err)
	assert.Equal(t, 1, ce.Row)
	assert.Equal(t, 1, ce.Col)
	assert.Equal(t, 12, ce.Value)
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	require.NoError(t, err)
	values[0][0] = 9

	cost, err := g.CostAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
}

func TestParse(t *testing.T) {
	g, err := grid.Parse(`
		241
		321
	`)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "241\n321", g.String())

	cost, err := g.CostAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyBlank", "\n  \n", grid.ErrEmptyGrid},
		{"Ragged", "123\n12", grid.ErrNonRectangular},
		{"BlankInterior", "12\n\n12", grid.ErrNonRectangular},
		{"Letter", "12\n1x", grid.ErrMalformedGrid},
		{"InnerSpace", "1 2\n123", grid.ErrMalformedGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.text, err, tc.err)
		})
	}
}

func TestParse_CellErrorChar(t *testing.T) {
	_, err := grid.Parse("12\n1x")
	var ce grid.CellError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, grid.CellError{Row: 1, Col: 1, Char: 'x'}, ce)
	assert.Contains(t, ce.Error(), `'x'`)
}

func TestRead_CRLF(t *testing.T) {
	g, err := grid.Read(strings.NewReader("12\r\n34\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "12\n34", g.String())
}

// TestRead_LongRows reads rows far longer than a default scanner token.
func TestRead_LongRows(t *testing.T) {
	const width = 100_000
	row := strings.Repeat("7", width)
	g, err := grid.Read(strings.NewReader(row + "\n" + row))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, width, g.Cols())

	c, err := g.CostAt(1, width-1)
	require.NoError(t, err)
	assert.Equal(t, 7, c)
}

// TestRead_NoTrailingNewline keeps a final row that lacks a line break.
func TestRead_NoTrailingNewline(t *testing.T) {
	g, err := grid.Read(strings.NewReader("12\n34"))
	require.NoError(t, err)
	assert.Equal(t, "12\n34", g.String())
}

//----------------------------------------------------------------------------//
// Lookup and movement
//----------------------------------------------------------------------------//

// TestCostAt_OutOfBounds checks every edge of a 2×3 grid.
func TestCostAt_OutOfBounds(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := g.CostAt(rc[0], rc[1])
		assert.True(t, errors.Is(err, grid.ErrOutOfBounds), "CostAt(%d,%d) error = %v", rc[0], rc[1], err)
		assert.False(t, g.InBounds(rc[0], rc[1]))
	}
	cost, err := g.CostAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestStep(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	cases := []struct {
		d        grid.Direction
		row, col int
		nr, nc   int
		ok       bool
	}{
		{grid.East, 0, 0, 0, 1, true},
		{grid.South, 0, 0, 1, 0, true},
		{grid.North, 0, 0, 0, 0, false},
		{grid.West, 0, 0, 0, 0, false},
		{grid.East, 1, 2, 1, 2, false},
		{grid.North, 1, 2, 0, 2, true},
		{grid.None, 1, 1, 1, 1, false},
	}
	for _, tc := range cases {
		nr, nc, ok := g.Step(tc.d, tc.row, tc.col)
		assert.Equal(t, tc.ok, ok, "Step(%v,%d,%d)", tc.d, tc.row, tc.col)
		if ok {
			assert.Equal(t, [2]int{tc.nr, tc.nc}, [2]int{nr, nc}, "Step(%v,%d,%d)", tc.d, tc.row, tc.col)
		}
	}
}

// TestOpposite_Involution verifies opposite(opposite(d)) == d for all directions.
func TestOpposite_Involution(t *testing.T) {
	for _, d := range append(grid.Compass[:], grid.None) {
		assert.Equal(t, d, d.Opposite().Opposite(), "direction %v", d)
	}
	assert.Equal(t, grid.South, grid.North.Opposite())
	assert.Equal(t, grid.West, grid.East.Opposite())
	assert.Equal(t, grid.None, grid.None.Opposite())
}

func TestReverses(t *testing.T) {
	assert.True(t, grid.North.Reverses(grid.South))
	assert.True(t, grid.West.Reverses(grid.East))
	assert.False(t, grid.North.Reverses(grid.North))
	assert.False(t, grid.North.Reverses(grid.East))
	for _, d := range grid.Compass {
		assert.False(t, grid.None.Reverses(d), "None must not reverse %v", d)
	}
}
