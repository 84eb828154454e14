package searcher

import "searchagent/experiments/metrics"

// Outcome is the terminal state of a search.
type Outcome int

const (
	GoalFound Outcome = iota + 1
	Exhausted
	InvalidConfiguration
)

func (o Outcome) String() string {
	switch o {
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	case InvalidConfiguration:
		return "configuration-error"
	default:
		return "unknown"
	}
}

// Result is what a search reports. Path and Goal are only set when the
// outcome is GoalFound, so a one-node solution is never confused with failure.
type Result[S comparable] struct {
	Outcome Outcome
	Path    []Summary[S]
	Goal    *Node[S]
	// Truncated is set when a cutoff pruned part of the tree, so an
	// Exhausted outcome does not prove the goal is unreachable.
	Truncated bool
	Metrics   metrics.SearchMetric
}

func (r Result[S]) Found() bool {
	return r.Outcome == GoalFound
}

// Cost is the cumulative cost of the solution, or 0 when none was found.
func (r Result[S]) Cost() float64 {
	if r.Goal == nil {
		return 0
	}
	return r.Goal.Cost()
}

// Err maps the outcome to ErrNoSolution or ErrConfiguration.
func (r Result[S]) Err() error {
	switch r.Outcome {
	case Exhausted:
		return ErrNoSolution
	case InvalidConfiguration:
		return ErrConfiguration
	default:
		return nil
	}
}
