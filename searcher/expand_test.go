package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	graph := sampleGraph()

	t.Run("expanding node keeps successor order", func(t *testing.T) {
		root := NewNode("A", 6, 0, nil)

		children := Expand[string](graph, root, 1)

		require.Len(t, children, 3)
		states := []string{children[0].State(), children[1].State(), children[2].State()}
		require.Equal(t, []string{"B", "C", "D"}, states, "Children should follow successor order")
		for _, child := range children {
			require.Same(t, root, child.Parent(), "Children should link to the expanded node")
			require.Equal(t, 1, child.Depth())
		}
	})

	t.Run("expanding node accumulates cost", func(t *testing.T) {
		root := NewNode("A", 6, 0, nil)
		d := NewNode("D", 2, 4, root)

		children := Expand[string](graph, d, 1)

		require.Equal(t, 5.0, children[0].Cost(), "H should cost A-D + D-H")
		require.Equal(t, 8.0, children[1].Cost(), "I should cost A-D + D-I")
		require.Equal(t, 6.0, children[2].Cost(), "J should cost A-D + D-J")
	})

	t.Run("expanding node weights heuristic by alpha", func(t *testing.T) {
		root := NewNode("A", 18, 0, nil)

		children := Expand[string](graph, root, 3)

		for _, child := range children {
			require.Equal(t, graph.Heuristic(child.State())*3, child.Heuristic(),
				"Heuristic should be the table value times alpha")
			require.Equal(t, child.Heuristic()+child.Cost(), child.Evaluation(),
				"Evaluation should be heuristic + cost")
		}
	})

	t.Run("expanding node with zero alpha ignores heuristic", func(t *testing.T) {
		root := NewNode("A", 0, 0, nil)

		children := Expand[string](graph, root, 0)

		for _, child := range children {
			require.Equal(t, 0.0, child.Heuristic())
			require.Equal(t, child.Cost(), child.Evaluation())
		}
	})

	t.Run("expanding dead end", func(t *testing.T) {
		j := NewNode("J", 1, 6, nil)

		require.Empty(t, Expand[string](graph, j, 1), "Dead end should have no children")
	})
}
