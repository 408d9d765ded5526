// Package dijkstra implements Dijkstra's shortest-path algorithm over a cost
// grid whose vertices carry directional history.
//
// Overview:
//
//   - A vertex is a State: (row, col, last direction, straight run length).
//     Reaching one cell along different headings yields different vertices,
//     each with its own best-known cost.
//   - Every candidate move is filtered twice: reversals are dropped
//     unconditionally, then a policy.Policy decides whether the move is legal.
//   - The search stops the first time a state at the goal cell is popped and
//     the policy's terminal rule accepts its run length.
//
// When to use:
//
//   - Routing with momentum: vehicles that cannot turn too often or must
//     keep going straight for a while before turning.
//   - Any grid search where the cost of a move depends on a short history of
//     recent moves, not just on the position.
//
// Key features:
//
//   - Functional options: WithPolicy (required), WithStart, WithGoal,
//     WithReturnPath, WithMaxIterations.
//   - Deterministic: equal-cost frontier entries are ordered by row, column,
//     direction and run length, so repeated runs explore identical sequences.
//   - Lazy decrease-key: improved states are pushed again and stale entries are
//     discarded when popped.
//   - No shared mutable state: concurrent searches over one *grid.Grid are safe.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = rows × cols × 4 × maxRun.
//   - Space: O(V) for the best-cost table, predecessors and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *grid.Grid.
//   - ErrNilPolicy:
//     Returned if no policy was supplied through WithPolicy.
//   - grid.ErrOutOfBounds (wrapped):
//     Returned if Start or Goal lie outside the grid.
//   - ErrIterationLimit:
//     Returned if WithMaxIterations was set and the cap was used up before
//     the goal was accepted.
//   - ErrNoPath:
//     Returned when no legal path reaches the goal. This is a normal outcome;
//     check it with errors.Is.
//   - ErrBadMaxIterations:
//     Raised (via panic) if you pass a negative value to WithMaxIterations.
//
// API reference:
//
//	func Search(g *grid.Grid, opts ...Option) (Result, error)
//	func MinCost(g *grid.Grid, p policy.Policy) (int, error)
//
// Cost accounting: entering a cell costs its digit; the start cell is free.
// A search whose start is its goal returns cost 0 under every policy.
//
// Thread safety:
//
//   - Search allocates all of its bookkeeping per call and only reads the grid.
package dijkstra
