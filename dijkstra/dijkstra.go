package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/policy"
)

// Search computes the minimal cost of moving from Options.Start to
// Options.Goal on g, where every move is filtered by Options.Policy.
//
// Returns:
//
//   - res: cost, terminal state, finalized-state count and, with
//     WithReturnPath(), the state sequence of one cheapest path.
//   - err: ErrNilGrid, ErrNilPolicy, an out-of-bounds start or goal
//     (wrapping grid.ErrOutOfBounds), ErrIterationLimit, or ErrNoPath when
//     no state at the goal satisfies the policy's terminal rule.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. a policy must be configured (ErrNilPolicy).
//  3. Start and Goal must lie inside g.
//
// Complexity:
//
//   - Time:  O(V log V) where V = rows × cols × 4 × maxRun.
//   - Space: O(V).
func Search(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.Policy == nil {
		return Result{}, ErrNilPolicy
	}
	if !cfg.goalSet {
		cfg.Goal = grid.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1}
	}
	if !g.InBounds(cfg.Start.Row, cfg.Start.Col) {
		return Result{}, fmt.Errorf("dijkstra: start %v: %w", cfg.Start, grid.ErrOutOfBounds)
	}
	if !g.InBounds(cfg.Goal.Row, cfg.Goal.Col) {
		return Result{}, fmt.Errorf("dijkstra: goal %v: %w", cfg.Goal, grid.ErrOutOfBounds)
	}

	// 2) Prepare the runner. The best-cost table is sized for one state per
	//    cell and grows as directional variants are discovered.
	r := &runner{
		g:       g,
		policy:  cfg.Policy,
		options: cfg,
		best:    make(map[State]int, g.Rows()*g.Cols()),
		pq:      make(frontier, 0, g.Rows()*g.Cols()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, g.Rows()*g.Cols())
	}

	// 3) Seed the synthetic start state and run the main loop.
	r.init()
	goal, cost, err := r.process()
	if err != nil {
		return Result{Expanded: r.expanded}, err
	}

	res := Result{Cost: cost, Goal: goal, Expanded: r.expanded}
	if cfg.ReturnPath {
		res.Path = r.path(goal)
	}

	return res, nil
}

// MinCost is Search from the top-left to the bottom-right corner under p,
// returning only the cost.
func MinCost(g *grid.Grid, p policy.Policy) (int, error) {
	res, err := Search(g, WithPolicy(p))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state for a single Search execution.
// Nothing in it is shared, so concurrent searches over one grid are safe.
type runner struct {
	g        *grid.Grid      // The input grid; read-only within Search.
	policy   policy.Policy   // Transition policy consulted for every move.
	options  Options         // Resolved configuration.
	start    State           // The synthetic start state.
	best     map[State]int   // Maps state → best known accumulated cost.
	prev     map[State]State // Maps state → predecessor; nil unless ReturnPath.
	pq       frontier        // Min-heap of pending entries.
	expanded int             // Number of finalized states.
}

// init records the start state at cost 0 and pushes it onto the heap.
func (r *runner) init() {
	r.start = State{Row: r.options.Start.Row, Col: r.options.Start.Col, Dir: grid.None, Run: 0}
	r.best[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{state: r.start, cost: 0})
}

// process is the core loop. It pops the cheapest entry, discards it if a
// cheaper cost for the same state was recorded after it was pushed, returns
// on the first accepted goal state, and otherwise relaxes its neighbours.
//
// Returning on the first accepted goal pop is exact: costs are
// non-negative, so no entry still in the heap can lead anywhere cheaper.
func (r *runner) process() (State, int, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost entry.
		it := heap.Pop(&r.pq).(entry)

		// 2) Skip stale entries.
		if it.cost > r.best[it.state] {
			continue
		}

		// 3) Early exit on the goal, subject to the terminal rule.
		if r.terminal(it.state) {
			return it.state, it.cost, nil
		}

		// 4) The state is final; refuse it once the cap is used up.
		if r.options.MaxIterations > 0 && r.expanded >= r.options.MaxIterations {
			return State{}, 0, fmt.Errorf("%w: %d states", ErrIterationLimit, r.options.MaxIterations)
		}
		r.expanded++

		// 5) Relax all legal moves out of the state.
		if err := r.relax(it); err != nil {
			return State{}, 0, err
		}
	}

	return State{}, 0, ErrNoPath
}

// terminal reports whether s completes a path. The synthetic start counts
// when the start cell is the goal: the empty path is legal under any policy.
func (r *runner) terminal(s State) bool {
	if s.Row != r.options.Goal.Row || s.Col != r.options.Goal.Col {
		return false
	}
	if s == r.start {
		return true
	}

	return r.policy.Accept(s.Run)
}

// relax tries the four compass moves out of it.state. Reversals are dropped
// before the policy is asked; a move is pushed only when it strictly improves
// the best known cost of the resulting state.
func (r *runner) relax(it entry) error {
	s := it.state
	var (
		nr, nc, run int
		ok          bool
	)
	for _, d := range grid.Compass {
		if s.Dir.Reverses(d) {
			continue
		}
		if nr, nc, ok = r.g.Step(d, s.Row, s.Col); !ok {
			continue
		}
		if !r.policy.Allow(s.Dir, s.Run, d) {
			continue
		}
		run = 1
		if d == s.Dir {
			run = s.Run + 1
		}

		w, err := r.g.CostAt(nr, nc)
		if err != nil {
			// Step already bounds-checked; reaching this means a broken grid.
			return fmt.Errorf("dijkstra: relax %v: %w", s, err)
		}

		next := State{Row: nr, Col: nc, Dir: d, Run: run}
		newCost := it.cost + w
		if old, seen := r.best[next]; seen && newCost >= old {
			continue
		}
		r.best[next] = newCost
		if r.prev != nil {
			r.prev[next] = s
		}
		heap.Push(&r.pq, entry{state: next, cost: newCost})
	}

	return nil
}

// path walks the predecessor map back from goal to the start state.
func (r *runner) path(goal State) []State {
	var rev []State
	for s := goal; ; {
		rev = append(rev, s)
		if s == r.start {
			break
		}
		s = r.prev[s]
	}
	out := make([]State, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}
