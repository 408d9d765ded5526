package policy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/policy"
)

func TestNew(t *testing.T) {
	p, err := policy.New(0, 3)
	require.NoError(t, err)
	assert.Equal(t, policy.BoundedRun{Max: 3}, p)

	p, err = policy.New(4, 10)
	require.NoError(t, err)
	assert.Equal(t, policy.ForcedMinRun{Min: 4, Max: 10}, p)

	for _, mm := range [][2]int{{0, 0}, {-1, 3}, {5, 4}} {
		_, err := policy.New(mm[0], mm[1])
		assert.True(t, errors.Is(err, policy.ErrBadRun), "New(%d,%d) error = %v", mm[0], mm[1], err)
	}
}

func TestBoundedRun_Allow(t *testing.T) {
	p := policy.Bounded(policy.DefaultMaxRun)
	cases := []struct {
		name string
		last grid.Direction
		run  int
		next grid.Direction
		want bool
	}{
		{"StartAnyDirection", grid.None, 0, grid.North, true},
		{"StraightUnderMax", grid.East, 2, grid.East, true},
		{"StraightAtMax", grid.East, 3, grid.East, false},
		{"TurnAfterOne", grid.East, 1, grid.South, true},
		{"TurnAtMax", grid.East, 3, grid.North, true},
		{"Reversal", grid.East, 1, grid.West, false},
		{"NoneCandidate", grid.East, 1, grid.None, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allow(tc.last, tc.run, tc.next))
		})
	}
	assert.True(t, p.Accept(0))
	assert.True(t, p.Accept(1))
}

func TestForcedMinRun_Allow(t *testing.T) {
	p := policy.ForcedMin(policy.UltraMinRun, policy.UltraMaxRun)
	cases := []struct {
		name string
		last grid.Direction
		run  int
		next grid.Direction
		want bool
	}{
		{"StartAnyDirection", grid.None, 0, grid.South, true},
		{"TurnImmediately", grid.East, 1, grid.South, false},
		{"TurnBeforeMin", grid.East, 3, grid.North, false},
		{"TurnAtMin", grid.East, 4, grid.North, true},
		{"StraightUnderMax", grid.South, 9, grid.South, true},
		{"StraightAtMax", grid.South, 10, grid.South, false},
		{"Reversal", grid.South, 5, grid.North, false},
		{"NoneCandidate", grid.South, 5, grid.None, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allow(tc.last, tc.run, tc.next))
		})
	}
}

// TestForcedMinRun_Accept covers the terminal-acceptance rule.
func TestForcedMinRun_Accept(t *testing.T) {
	p := policy.ForcedMin(4, 10)
	assert.False(t, p.Accept(1))
	assert.False(t, p.Accept(3))
	assert.True(t, p.Accept(4))
	assert.True(t, p.Accept(10))
}

// TestReversalAlwaysRejected checks every policy against every reversal.
func TestReversalAlwaysRejected(t *testing.T) {
	policies := []policy.Policy{
		policy.Bounded(100),
		policy.ForcedMin(0, 100),
		policy.Func{AllowFunc: func(grid.Direction, int, grid.Direction) bool { return true }},
	}
	for _, p := range policies {
		for _, d := range grid.Compass {
			for run := 0; run <= 5; run++ {
				assert.False(t, p.Allow(d, run, d.Opposite()), "%T allowed %v after %v", p, d.Opposite(), d)
			}
		}
	}
}

func TestFunc(t *testing.T) {
	var p policy.Policy = policy.Func{}
	assert.True(t, p.Allow(grid.East, 50, grid.East))
	assert.True(t, p.Accept(0))

	p = policy.Func{
		AllowFunc:  func(_ grid.Direction, run int, _ grid.Direction) bool { return run < 2 },
		AcceptFunc: func(run int) bool { return run == 2 },
	}
	assert.True(t, p.Allow(grid.North, 1, grid.North))
	assert.False(t, p.Allow(grid.North, 2, grid.East))
	assert.True(t, p.Accept(2))
	assert.False(t, p.Accept(1))
}
