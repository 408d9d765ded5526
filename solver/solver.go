// Package solver runs several search modes over one grid at the same time.
//
// The grid is only read, and each mode owns its own search state, so the modes
// share nothing mutable. Results come back in the order the modes were
// configured, whatever order they finish in.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// Report is the outcome of one mode.
type Report struct {
	Mode     Mode
	Cost     int
	Found    bool // false when the mode has no legal path
	Expanded int
	Elapsed  time.Duration
	Path     []dijkstra.State
}

// Solve runs every mode of cfg over g concurrently. extra options, such as
// dijkstra.WithReturnPath or custom endpoints, apply to every mode.
//
// A mode without a legal path is reported with Found == false. Any other
// failure cancels the modes that have not started yet and is returned.
func Solve(ctx context.Context, g *grid.Grid, cfg Config, extra ...dijkstra.Option) ([]Report, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reports := make([]Report, len(cfg.Modes))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, m := range cfg.Modes {
		i, m := i, m
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			rep, err := run(g, m, cfg.MaxIterations, extra)
			if err != nil {
				return err
			}
			reports[i] = rep

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func run(g *grid.Grid, m Mode, maxIterations int, extra []dijkstra.Option) (Report, error) {
	p, err := m.Policy()
	if err != nil {
		return Report{}, fmt.Errorf("solver: mode %q: %w", m.Name, err)
	}
	opts := append([]dijkstra.Option{
		dijkstra.WithPolicy(p),
		dijkstra.WithMaxIterations(maxIterations),
	}, extra...)

	began := time.Now()
	res, err := dijkstra.Search(g, opts...)
	rep := Report{Mode: m, Expanded: res.Expanded, Elapsed: time.Since(began)}
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return rep, nil
	case err != nil:
		return Report{}, fmt.Errorf("solver: mode %q: %w", m.Name, err)
	}
	rep.Cost, rep.Found, rep.Path = res.Cost, true, res.Path

	return rep, nil
}
