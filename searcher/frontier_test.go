package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(f Frontier[string]) []string {
	var states []string
	for f.Len() > 0 {
		states = append(states, f.Remove().State())
	}
	return states
}

func TestNewFrontier(t *testing.T) {
	t.Run("creating frontier for every strategy", func(t *testing.T) {
		for _, strategy := range Strategies() {
			f, err := NewFrontier[string](strategy)
			require.NoError(t, err, "Strategy %s should be supported", strategy)
			require.Equal(t, 0, f.Len(), "Frontier should start empty")
			require.Nil(t, f.Remove(), "Empty frontier should return no node")
		}
	})

	t.Run("rejecting unknown strategy", func(t *testing.T) {
		f, err := NewFrontier[string](Strategy(42))

		require.Nil(t, f)
		require.ErrorIs(t, err, ErrConfiguration)
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		require.Equal(t, "Strategy(42)", configErr.Strategy)
	})
}

func TestBreadthFirstFrontier(t *testing.T) {
	f, err := NewFrontier[string](BreadthFirst)
	require.NoError(t, err)

	f.Insert(NewNode("C", 0, 9, nil), NewNode("A", 9, 0, nil))
	f.Insert(NewNode("B", 1, 1, nil))

	require.Equal(t, []string{"C", "A", "B"}, drain(f), "Nodes should leave in insertion order")
}

func TestGreedyFrontier(t *testing.T) {
	t.Run("removing minimum heuristic", func(t *testing.T) {
		f, err := NewFrontier[string](Greedy)
		require.NoError(t, err)

		f.Insert(
			NewNode("B", 5, 1, nil),
			NewNode("D", 2, 100, nil),
			NewNode("C", 3, 0, nil),
		)

		require.Equal(t, "D", f.Remove().State(), "Cost should not matter to greedy removal")
		require.Equal(t, []string{"C", "B"}, drain(f))
	})

	t.Run("breaking ties by frontier order", func(t *testing.T) {
		f, err := NewFrontier[string](Greedy)
		require.NoError(t, err)

		f.Insert(NewNode("K", 0, 11, nil), NewNode("X", 3, 0, nil))
		f.Insert(NewNode("L", 0, 10, nil))
		f.Insert(NewNode("M", 0, 1, nil))

		require.Equal(t, []string{"K", "L", "M", "X"}, drain(f),
			"Equal heuristics should leave in insertion order")
	})
}

func TestWeightedAStarFrontier(t *testing.T) {
	t.Run("removing minimum evaluation", func(t *testing.T) {
		f, err := NewFrontier[string](WeightedAStar)
		require.NoError(t, err)

		f.Insert(
			NewNode("B", 5, 1, nil), // f=6
			NewNode("C", 5, 2, nil), // f=7
			NewNode("H", 0, 5, nil), // f=5
		)

		require.Equal(t, []string{"H", "B", "C"}, drain(f))
	})

	t.Run("keeping relative order after removals", func(t *testing.T) {
		f, err := NewFrontier[string](WeightedAStar)
		require.NoError(t, err)

		f.Insert(
			NewNode("C", 5, 2, nil), // f=7
			NewNode("D", 2, 4, nil), // f=6
			NewNode("J", 1, 6, nil), // f=7
		)
		require.Equal(t, "D", f.Remove().State())
		f.Insert(NewNode("E", 4, 3, nil)) // f=7

		require.Equal(t, []string{"C", "J", "E"}, drain(f),
			"Ties should follow the order nodes entered the frontier")
	})
}
