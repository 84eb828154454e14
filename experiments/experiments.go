package experiments

import (
	"fmt"
	"strings"

	"searchagent/experiments/metrics"
	"searchagent/searcher"

	"github.com/rs/zerolog/log"
)

// Grid pairs every strategy with every alpha. Breadth-first ignores alpha
// for ordering, but still runs once per alpha so the rows line up.
func Grid(strategies []searcher.Strategy, alphas []float64, cutoff, maxExpansions int) []metrics.RunConfig {
	configs := make([]metrics.RunConfig, 0, len(strategies)*len(alphas))
	for _, strategy := range strategies {
		for _, alpha := range alphas {
			configs = append(configs, metrics.RunConfig{
				ID:            len(configs) + 1,
				Strategy:      strategy.String(),
				Alpha:         alpha,
				Cutoff:        cutoff,
				MaxExpansions: maxExpansions,
			})
		}
	}
	return configs
}

// Run searches from initial to goal once per config. A config with an unknown
// strategy is recorded with its configuration-error outcome.
func Run[S comparable](graph searcher.Graph[S], initial, goal S, configs []metrics.RunConfig) []metrics.RunRecord {
	records := make([]metrics.RunRecord, 0, len(configs))

	for i, config := range configs {
		log.Info().Msgf("starting run %d of %d with config=%+v...", i+1, len(configs), config)

		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			log.Warn().Err(err).Msgf("skipping run %d", i+1)
			records = append(records, metrics.RunRecord{
				Config:       config.ID,
				Outcome:      searcher.InvalidConfiguration.String(),
				SearchMetric: metrics.SearchMetric{Strategy: config.Strategy, Alpha: config.Alpha},
			})
			continue
		}

		result, _ := searcher.Search(graph, initial, goal, strategy,
			searcher.WithAlpha(config.Alpha),
			searcher.WithCutoff(config.Cutoff),
			searcher.WithMaxExpansions(config.MaxExpansions),
			searcher.WithMetrics(),
		)
		records = append(records, record(config, result))

		log.Info().Msgf("completed run %d of %d: %s", i+1, len(configs), result.Outcome)
	}

	return records
}

// Store writes configs and records under <root>/<name>/<timestamp> and
// returns that directory.
func Store(root, name string, configs []metrics.RunConfig, records []metrics.RunRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteRunConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored run configs")

	if err := writer.WriteRunRecords(records); err != nil {
		return "", err
	}
	log.Info().Msg("stored run records")

	return writer.Dir(), nil
}

func record[S comparable](config metrics.RunConfig, result searcher.Result[S]) metrics.RunRecord {
	r := metrics.RunRecord{
		Config:       config.ID,
		Outcome:      result.Outcome.String(),
		Truncated:    result.Truncated,
		SearchMetric: result.Metrics,
	}
	if result.Found() {
		r.Cost = result.Cost()
		r.Edges = len(result.Path) - 1
		r.Path = FormatPath(result.Path)
	}
	return r
}

// FormatPath renders a solution as "A-D-H-L".
func FormatPath[S comparable](path []searcher.Summary[S]) string {
	states := make([]string, len(path))
	for i, step := range path {
		states[i] = fmt.Sprint(step.State)
	}
	return strings.Join(states, "-")
}
