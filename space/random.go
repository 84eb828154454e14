package space

import (
	"math"

	"golang.org/x/exp/rand"
)

// RandomDAG builds a reproducible acyclic Problem over states 0..n-1 with
// initial 0 and goal n-1. Edges only lead to higher states and every state but
// the goal has at least one successor, so the goal is always reachable. Edge
// weights are integers in [1, maxWeight]. The heuristic is the exact remaining
// cost scaled by a random factor in [0.5, 1], hence admissible.
func RandomDAG(seed uint64, n, maxBranching, maxWeight int) *Problem[int] {
	if n < 2 {
		panic("random graph needs at least 2 states")
	}
	if maxBranching < 1 || maxWeight < 1 {
		panic("random graph needs positive branching and weight bounds")
	}

	rng := rand.New(rand.NewSource(seed))
	t := NewTable[int]()
	for state := 0; state < n; state++ {
		t.AddState(state)
	}

	for state := 0; state < n-1; state++ {
		targets := rng.Perm(n - state - 1)
		branching := 1 + rng.Intn(min(maxBranching, len(targets)))
		for _, offset := range targets[:branching] {
			t.AddEdge(state, state+1+offset, float64(1+rng.Intn(maxWeight)))
		}
	}

	// Exact remaining cost, computed from the goal backwards.
	remaining := make([]float64, n)
	for state := n - 2; state >= 0; state-- {
		remaining[state] = math.Inf(1)
		for _, successor := range t.Successors(state) {
			remaining[state] = min(remaining[state], successor.Weight+remaining[successor.State])
		}
	}
	for state := 0; state < n; state++ {
		t.SetHeuristic(state, remaining[state]*(0.5+rng.Float64()/2))
	}

	return &Problem[int]{Graph: t, Initial: 0, Goal: n - 1}
}
