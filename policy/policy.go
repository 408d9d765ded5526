// Package policy defines the transition rules that decide which moves a
// constrained grid search may take.
//
// A Policy sees the direction and straight run length of the current state
// and the candidate direction of the next move. It never sees costs or
// coordinates; the search engine owns those. Reversal is illegal under every
// policy, and the engine also rejects it before a policy is consulted.
//
// Two canonical policies are provided:
//
//   - BoundedRun: never move more than Max steps in a straight line.
//   - ForcedMinRun: move at least Min steps before turning (except from the
//     start), never more than Max, and only stop at the goal after Min steps.
package policy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// Reference run limits.
const (
	// DefaultMaxRun is the straight-line limit of the bounded-run mode.
	DefaultMaxRun = 3
	// UltraMinRun is the minimum straight run of the forced-minimum mode.
	UltraMinRun = 4
	// UltraMaxRun is the maximum straight run of the forced-minimum mode.
	UltraMaxRun = 10
)

// ErrBadRun indicates run limits that admit no legal move.
var ErrBadRun = errors.New("policy: run limits must satisfy 0 <= min <= max and max >= 1")

// Policy decides legality of moves and acceptance of terminal states.
type Policy interface {
	// Allow reports whether moving in next is legal from a state that last
	// moved in last and has taken run consecutive steps that way.
	Allow(last grid.Direction, run int, next grid.Direction) bool
	// Accept reports whether a state at the goal cell that arrived with the
	// given run length completes a path.
	Accept(run int) bool
}

// New returns BoundedRun when minRun is zero and ForcedMinRun otherwise.
func New(minRun, maxRun int) (Policy, error) {
	if maxRun < 1 || minRun < 0 || minRun > maxRun {
		return nil, fmt.Errorf("%w: got min=%d max=%d", ErrBadRun, minRun, maxRun)
	}
	if minRun == 0 {
		return Bounded(maxRun), nil
	}

	return ForcedMin(minRun, maxRun), nil
}

// BoundedRun forbids straight runs longer than Max.
type BoundedRun struct {
	Max int
}

// Bounded returns a BoundedRun with the given maximum.
func Bounded(maxRun int) BoundedRun { return BoundedRun{Max: maxRun} }

// Allow implements Policy.
func (p BoundedRun) Allow(last grid.Direction, run int, next grid.Direction) bool {
	if next == grid.None || last.Reverses(next) {
		return false
	}
	if next == last {
		return run+1 <= p.Max
	}

	return p.Max >= 1
}

// Accept implements Policy. Any arrival completes a path.
func (p BoundedRun) Accept(int) bool { return true }

func (p BoundedRun) String() string { return fmt.Sprintf("bounded(max=%d)", p.Max) }

// ForcedMinRun requires straight runs of at least Min steps before a turn or
// a stop, and at most Max steps in total.
type ForcedMinRun struct {
	Min, Max int
}

// ForcedMin returns a ForcedMinRun with the given limits.
func ForcedMin(minRun, maxRun int) ForcedMinRun { return ForcedMinRun{Min: minRun, Max: maxRun} }

// Allow implements Policy. The start state (last == None) may head anywhere.
func (p ForcedMinRun) Allow(last grid.Direction, run int, next grid.Direction) bool {
	if next == grid.None || last.Reverses(next) {
		return false
	}
	switch {
	case last == grid.None:
		return p.Max >= 1
	case next == last:
		return run+1 <= p.Max
	default:
		return run >= p.Min && p.Max >= 1
	}
}

// Accept implements Policy.
func (p ForcedMinRun) Accept(run int) bool { return run >= p.Min }

func (p ForcedMinRun) String() string {
	return fmt.Sprintf("forced(min=%d,max=%d)", p.Min, p.Max)
}

// Func adapts plain functions to Policy. A nil AllowFunc only forbids
// reversals; a nil AcceptFunc accepts every arrival.
type Func struct {
	AllowFunc  func(last grid.Direction, run int, next grid.Direction) bool
	AcceptFunc func(run int) bool
}

// Allow implements Policy.
func (f Func) Allow(last grid.Direction, run int, next grid.Direction) bool {
	if next == grid.None || last.Reverses(next) {
		return false
	}
	if f.AllowFunc == nil {
		return true
	}

	return f.AllowFunc(last, run, next)
}

// Accept implements Policy.
func (f Func) Accept(run int) bool {
	if f.AcceptFunc == nil {
		return true
	}

	return f.AcceptFunc(run)
}
