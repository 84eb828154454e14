package space

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `
initial: S
goal: G
heuristics: {S: 3, A: 2, B: 1, G: 0}
edges:
  S:
    - {to: B, weight: 4}
    - {to: A, weight: 1}
  A:
    - {to: G, weight: 5}
  B:
    - {to: G, weight: 1}
`

func TestDecode(t *testing.T) {
	t.Run("decoding valid document", func(t *testing.T) {
		problem, err := Decode(strings.NewReader(sampleDocument))

		require.NoError(t, err)
		require.Equal(t, "S", problem.Initial)
		require.Equal(t, "G", problem.Goal)
		require.Equal(t, []string{"B", "A"}, successorStates(problem.Graph, "S"),
			"Edge lists should keep document order")
		require.Equal(t, 2.0, problem.Graph.Heuristic("A"))
		require.Len(t, problem.Graph.States(), 4)
	})

	errorCases := []struct {
		name     string
		document string
		message  string
	}{
		{"missing goal", "initial: A\nheuristics: {A: 0}\n", "needs both initial and goal"},
		{"goal without heuristic", "initial: A\ngoal: B\nheuristics: {A: 0}\n", `state "B" has no heuristic`},
		{"negative heuristic", "initial: A\ngoal: B\nheuristics: {A: -1, B: 0}\n", "negative heuristic"},
		{"unknown target", "initial: A\ngoal: B\nheuristics: {A: 1, B: 0}\nedges: {A: [{to: C, weight: 1}]}\n", `unknown state "C"`},
		{"negative weight", "initial: A\ngoal: B\nheuristics: {A: 1, B: 0}\nedges: {A: [{to: B, weight: -2}]}\n", "negative weight"},
		{"edges of unknown state", "initial: A\ngoal: B\nheuristics: {A: 1, B: 0}\nedges: {C: [{to: B, weight: 1}]}\n", `state "C" has edges`},
		{"unknown field", "initial: A\ngoal: A\nheuristics: {A: 0}\nweights: {}\n", "failed to parse"},
	}
	for _, tc := range errorCases {
		t.Run("rejecting "+tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.document))

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("loading file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "graph.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))

		problem, err := Load(path)

		require.NoError(t, err)
		require.True(t, problem.Graph.Has("B"))
	})

	t.Run("loading missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
