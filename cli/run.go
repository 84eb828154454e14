package cli

import (
	"fmt"

	"searchagent/searcher"
	"searchagent/space"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Search one graph with one strategy and print the solution path",
	}

	runStrategy      = runCmd.Flags().String("strategy", searcher.WeightedAStar.String(), "Search strategy: breadth-first, greedy or weighted-a*")
	runAlpha         = runCmd.Flags().Float64("alpha", searcher.DefaultAlpha, "Heuristic weight")
	runGraph         = runCmd.Flags().String("graph", "", "YAML graph document (the built-in sample graph when empty)")
	runInitial       = runCmd.Flags().String("initial", "", "Override the initial state of the graph")
	runGoal          = runCmd.Flags().String("goal", "", "Override the goal state of the graph")
	runCutoff        = runCmd.Flags().Int("cutoff", 0, "Do not expand nodes at this depth (0 disables)")
	runMaxExpansions = runCmd.Flags().Int("max-expansions", 0, "Give up after this many expansions (0 disables)")
)

func runSearch(cmd *cobra.Command, args []string) error {
	problem, err := loadProblem(*runGraph, *runInitial, *runGoal)
	if err != nil {
		return err
	}

	strategy, err := searcher.ParseStrategy(*runStrategy)
	if err != nil {
		return err
	}

	result, err := searcher.Search[string](problem.Graph, problem.Initial, problem.Goal, strategy,
		searcher.WithAlpha(*runAlpha),
		searcher.WithCutoff(*runCutoff),
		searcher.WithMaxExpansions(*runMaxExpansions),
		searcher.WithMetrics(),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running tree search with algorithm = %s, alpha = %g\n", strategy, *runAlpha)
	if !result.Found() {
		fmt.Fprintln(out, renderFailure(result))
		return nil
	}
	fmt.Fprintln(out, renderPath(result))
	return nil
}

func loadProblem(path, initial, goal string) (*space.Problem[string], error) {
	problem := space.Sample()
	if path != "" {
		var err error
		problem, err = space.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if initial != "" {
		problem.Initial = initial
	}
	if goal != "" {
		problem.Goal = goal
	}
	for _, state := range []string{problem.Initial, problem.Goal} {
		if !problem.Graph.Has(state) {
			return nil, errors.Errorf("state %q is not part of the graph", state)
		}
	}
	return problem, nil
}
