package cli

import (
	"fmt"
	"strconv"

	"searchagent/experiments"
	"searchagent/searcher"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run every strategy for every alpha and store the runs as CSV",
	}

	experimentName          = experimentCmd.Flags().String("name", "alpha", "Experiment name, used as output subfolder")
	experimentOut           = experimentCmd.Flags().String("out", "experiments", "Folder to store experiment results in")
	experimentGraph         = experimentCmd.Flags().String("graph", "", "YAML graph document (the built-in sample graph when empty)")
	experimentStrategies    = experimentCmd.Flags().StringSlice("strategies", []string{"breadth-first", "greedy", "weighted-a*"}, "Strategies to run")
	experimentAlphas        = experimentCmd.Flags().StringSlice("alphas", []string{"0", "1", "2"}, "Heuristic weights to run")
	experimentCutoff        = experimentCmd.Flags().Int("cutoff", 0, "Do not expand nodes at this depth (0 disables)")
	experimentMaxExpansions = experimentCmd.Flags().Int("max-expansions", 10000, "Give up after this many expansions (0 disables)")
)

func runExperiment(cmd *cobra.Command, args []string) error {
	problem, err := loadProblem(*experimentGraph, "", "")
	if err != nil {
		return err
	}

	strategies := make([]searcher.Strategy, 0, len(*experimentStrategies))
	for _, name := range *experimentStrategies {
		strategy, err := searcher.ParseStrategy(name)
		if err != nil {
			return err
		}
		strategies = append(strategies, strategy)
	}

	alphas, err := parseAlphas(*experimentAlphas)
	if err != nil {
		return err
	}

	configs := experiments.Grid(strategies, alphas, *experimentCutoff, *experimentMaxExpansions)
	records := experiments.Run[string](problem.Graph, problem.Initial, problem.Goal, configs)
	dir, err := experiments.Store(*experimentOut, *experimentName, configs, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d runs in %s\n", len(records), dir)
	return nil
}

func parseAlphas(values []string) ([]float64, error) {
	alphas := make([]float64, 0, len(values))
	for _, value := range values {
		alpha, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse alpha %q", value)
		}
		alphas = append(alphas, alpha)
	}
	return alphas, nil
}
