// Package dijkstra defines the search state, options and sentinel errors
// of the constrained Dijkstra search over a cost grid.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/policy"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that no transition policy was configured.
	ErrNilPolicy = errors.New("dijkstra: transition policy is nil")

	// ErrNoPath indicates that the frontier emptied before any state at the
	// goal satisfied the policy's terminal rule. It is a normal outcome of a
	// search, not a fault.
	ErrNoPath = errors.New("dijkstra: no legal path to goal")

	// ErrIterationLimit indicates the search needed to finalize more states
	// than allowed by WithMaxIterations. Result.Expanded then equals the cap.
	ErrIterationLimit = errors.New("dijkstra: iteration limit reached")

	// ErrBadMaxIterations indicates that MaxIterations was set to a negative value.
	ErrBadMaxIterations = errors.New("dijkstra: MaxIterations must be non-negative")
)

// State is a vertex of the search graph: a cell plus the direction of the
// last move and the number of consecutive moves taken that way.
// Two states at the same cell with different histories are distinct vertices.
type State struct {
	Row, Col int
	Dir      grid.Direction
	Run      int
}

// Cell returns the coordinates of s.
func (s State) Cell() grid.Cell {
	return grid.Cell{Row: s.Row, Col: s.Col}
}

// Less orders states by row, then column, then direction, then run length.
// The frontier uses it to break ties between entries of equal cost.
func (s State) Less(o State) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	if s.Col != o.Col {
		return s.Col < o.Col
	}
	if s.Dir != o.Dir {
		return s.Dir < o.Dir
	}

	return s.Run < o.Run
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d %s×%d)", s.Row, s.Col, s.Dir, s.Run)
}

// Result is the outcome of a successful Search.
//
// Cost     – total cost of the entered cells; the start cell is not counted.
// Goal     – the terminal state that completed the path.
// Path     – states from the synthetic start to Goal; nil unless ReturnPath.
// Expanded – number of states finalized before the goal was accepted.
type Result struct {
	Cost     int
	Goal     State
	Path     []State
	Expanded int
}

// Options configures the behavior of Search.
//
// Policy        – transition policy; required.
// Start         – cell of the synthetic start state. Default (0, 0).
// Goal          – destination cell. Default is the bottom-right corner.
// ReturnPath    – if true, Result.Path is populated.
// MaxIterations – cap on finalized states; 0 means unlimited.
type Options struct {
	Policy        policy.Policy
	Start         grid.Cell
	Goal          grid.Cell
	ReturnPath    bool
	MaxIterations int

	goalSet bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithPolicy sets the transition policy. Must be supplied.
func WithPolicy(p policy.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithStart moves the start cell away from the top-left corner.
func WithStart(row, col int) Option {
	return func(o *Options) {
		o.Start = grid.Cell{Row: row, Col: col}
	}
}

// WithGoal moves the destination away from the bottom-right corner.
func WithGoal(row, col int) Option {
	return func(o *Options) {
		o.Goal = grid.Cell{Row: row, Col: col}
		o.goalSet = true
	}
}

// WithReturnPath enables reconstruction of the state sequence in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxIterations caps the number of states the search may finalize.
// Zero disables the cap. Negative values panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Policy:        nil (must be set with WithPolicy).
//   - Start:         (0, 0).
//   - Goal:          bottom-right corner of the searched grid.
//   - ReturnPath:    false.
//   - MaxIterations: 0 (unlimited).
func DefaultOptions() Options {
	return Options{
		Start: grid.Cell{Row: 0, Col: 0},
	}
}
