// Package space provides concrete state spaces for the searcher package:
// an in-memory table, the sample exercise graph, YAML graph documents and
// reproducible random acyclic graphs.
package space

import "searchagent/searcher"

// Table is a state space held in memory. Successors keep the order in which
// edges were added, which fixes tie-breaking during search.
type Table[S comparable] struct {
	states     []S
	edges      map[S][]searcher.Successor[S]
	heuristics map[S]float64
}

func NewTable[S comparable]() *Table[S] {
	return &Table[S]{
		edges:      make(map[S][]searcher.Successor[S]),
		heuristics: make(map[S]float64),
	}
}

// AddState registers state without edges. Adding a known state is a no-op.
func (t *Table[S]) AddState(state S) {
	if t.Has(state) {
		return
	}
	t.states = append(t.states, state)
	t.edges[state] = nil
}

// AddEdge appends a directed edge, registering both endpoints.
func (t *Table[S]) AddEdge(from, to S, weight float64) {
	t.AddState(from)
	t.AddState(to)
	t.edges[from] = append(t.edges[from], searcher.Successor[S]{State: to, Weight: weight})
}

func (t *Table[S]) SetHeuristic(state S, estimate float64) {
	t.AddState(state)
	t.heuristics[state] = estimate
}

func (t *Table[S]) Has(state S) bool {
	_, ok := t.edges[state]
	return ok
}

// States returns the registered states in registration order.
func (t *Table[S]) States() []S {
	return append([]S(nil), t.states...)
}

func (t *Table[S]) Successors(state S) []searcher.Successor[S] {
	return t.edges[state]
}

// Heuristic returns the estimate for state, 0 when none was set.
func (t *Table[S]) Heuristic(state S) float64 {
	return t.heuristics[state]
}

// Problem pairs a state space with the endpoints of a search.
type Problem[S comparable] struct {
	Graph   *Table[S]
	Initial S
	Goal    S
}
