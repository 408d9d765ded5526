// Package crucible finds the cheapest route across a grid of movement costs
// when the mover cannot turn freely: a heavy cart that must not go straight
// for too long, or one that must build up speed before it may turn.
//
// What is in the box:
//
//	grid/          immutable digit cost Grid, Direction, bounds-checked Step
//	policy/        transition rules: BoundedRun, ForcedMinRun, Func adapter
//	dijkstra/      Dijkstra over (cell, heading, run length) states
//	solver/        yaml-configured modes run concurrently over one grid
//	cmd/crucible/  command-line front end
//
// Quick ASCII example, bounded run of 3:
//
//	1111      E E E
//	9991          S
//	9991          S    cost 5
//
// The search engine never changes between rules; swapping the policy is the
// only thing that distinguishes the modes.
//
//	go get github.com/katalvlaran/crucible
package crucible
