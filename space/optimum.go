package space

import (
	"math"

	"searchagent/searcher"
)

// Optimum describes the best paths between two states: the lowest total
// weight and, independently, the fewest edges.
type Optimum struct {
	Cost  float64
	Edges int
}

// FindOptimum enumerates every path from initial to goal that does not repeat
// a state. It is exponential and meant for small graphs. ok is false when the
// goal is unreachable.
func FindOptimum[S comparable](graph searcher.Graph[S], initial, goal S) (optimum Optimum, ok bool) {
	optimum = Optimum{Cost: math.Inf(1), Edges: math.MaxInt}
	onPath := map[S]bool{}

	var walk func(state S, cost float64, edges int)
	walk = func(state S, cost float64, edges int) {
		if state == goal {
			ok = true
			optimum.Cost = min(optimum.Cost, cost)
			optimum.Edges = min(optimum.Edges, edges)
			return
		}
		onPath[state] = true
		for _, successor := range graph.Successors(state) {
			if !onPath[successor.State] {
				walk(successor.State, cost+successor.Weight, edges+1)
			}
		}
		delete(onPath, state)
	}
	walk(initial, 0, 0)

	if !ok {
		return Optimum{}, false
	}
	return optimum, true
}
