package searcher

import "fmt"

// Node is a point in the search tree. It is never modified once built, so
// siblings and descendants can safely share the ancestor chain.
type Node[S comparable] struct {
	state      S
	parent     *Node[S]
	depth      int
	cost       float64
	heuristic  float64
	evaluation float64
}

// Summary is the plain-value view of a Node reported in search results.
type Summary[S comparable] struct {
	State      S
	Evaluation float64
	Cost       float64
	Heuristic  float64
	Depth      int
}

// NewNode builds a node for state. heuristic is expected to already carry the
// alpha weighting; the evaluation is fixed here and never recomputed.
func NewNode[S comparable](state S, heuristic, cost float64, parent *Node[S]) *Node[S] {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	return &Node[S]{
		state:      state,
		parent:     parent,
		depth:      depth,
		cost:       cost,
		heuristic:  heuristic,
		evaluation: heuristic + cost,
	}
}

func (n *Node[S]) State() S            { return n.state }
func (n *Node[S]) Parent() *Node[S]    { return n.parent }
func (n *Node[S]) Depth() int          { return n.depth }
func (n *Node[S]) Cost() float64       { return n.cost }
func (n *Node[S]) Heuristic() float64  { return n.heuristic }
func (n *Node[S]) Evaluation() float64 { return n.evaluation }

// Path returns the nodes from the root down to n, both included.
func (n *Node[S]) Path() []*Node[S] {
	path := make([]*Node[S], n.depth+1)
	for node := n; node != nil; node = node.parent {
		path[node.depth] = node
	}
	return path
}

func (n *Node[S]) Summary() Summary[S] {
	return Summary[S]{
		State:      n.state,
		Evaluation: n.evaluation,
		Cost:       n.cost,
		Heuristic:  n.heuristic,
		Depth:      n.depth,
	}
}

func (n *Node[S]) String() string {
	return fmt.Sprintf("State: %v - f(n): %g - Depth: %d", n.state, n.evaluation, n.depth)
}

func summarize[S comparable](path []*Node[S]) []Summary[S] {
	summaries := make([]Summary[S], len(path))
	for i, node := range path {
		summaries[i] = node.Summary()
	}
	return summaries
}
