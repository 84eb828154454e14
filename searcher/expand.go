package searcher

// Expand builds the children of node in the order of graph.Successors. Each
// child's heuristic is weighted by alpha at construction.
func Expand[S comparable](graph Graph[S], node *Node[S], alpha float64) []*Node[S] {
	successors := graph.Successors(node.state)
	children := make([]*Node[S], 0, len(successors))
	for _, successor := range successors {
		heuristic := graph.Heuristic(successor.State) * alpha
		child := NewNode(successor.State, heuristic, node.cost+successor.Weight, node)
		children = append(children, child)
	}
	return children
}
