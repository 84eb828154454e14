// Package searcher implements tree search over a caller-supplied state space.
//
// A single driver explores the space with one of three frontier strategies
// (breadth-first, greedy best-first and weighted A*) ranked by the same
// evaluation f(n) = alpha*h(n) + g(n). States are never deduplicated: the same
// state may be expanded once for every path that reaches it.
package searcher

// Graph is the state space explored by an Agent. Both methods must be pure
// and deterministic.
type Graph[S comparable] interface {
	// Successors returns the reachable states of state, in a fixed order, with
	// the non-negative weight of each edge. An empty result marks a dead end.
	Successors(state S) []Successor[S]
	// Heuristic estimates the remaining cost from state to the goal.
	Heuristic(state S) float64
}

type Successor[S comparable] struct {
	State  S
	Weight float64
}

const DefaultAlpha = 1.0
