package space

// Sample returns the 12-state weighted graph from A to L. Its heuristic is
// admissible; the cheapest path is A-D-H-L with cost 10.
func Sample() *Problem[string] {
	t := NewTable[string]()

	edges := []struct {
		from, to string
		weight   float64
	}{
		{"A", "B", 1}, {"A", "C", 2}, {"A", "D", 4},
		{"B", "F", 5}, {"B", "E", 4},
		{"C", "E", 1},
		{"D", "H", 1}, {"D", "I", 4}, {"D", "J", 2},
		{"E", "G", 2}, {"E", "H", 3},
		{"F", "G", 1},
		{"G", "K", 6},
		{"H", "K", 6}, {"H", "L", 5},
		{"I", "L", 3},
	}
	for _, state := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		t.AddState(state)
	}
	for _, e := range edges {
		t.AddEdge(e.from, e.to, e.weight)
	}

	heuristics := map[string]float64{
		"A": 6, "B": 5, "C": 5, "D": 2, "E": 4, "F": 5,
		"G": 4, "H": 1, "I": 2, "J": 1, "K": 0, "L": 0,
	}
	for state, h := range heuristics {
		t.SetHeuristic(state, h)
	}

	return &Problem[string]{Graph: t, Initial: "A", Goal: "L"}
}
