package searcher

import (
	"searchagent/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(s *settings)

type settings struct {
	alpha         float64
	cutoff        int
	maxExpansions int
	newCollector  func() metrics.Collector
}

// WithAlpha sets the heuristic weight. Negative values are accepted but
// their behavior is undefined.
func WithAlpha(alpha float64) Option {
	return func(s *settings) {
		s.alpha = alpha
	}
}

// WithCutoff stops expanding nodes at the given depth. Such nodes are still
// goal-tested.
func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithMaxExpansions ends the search as Exhausted after n expansions.
func WithMaxExpansions(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxExpansions = n
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.newCollector = metrics.NewCollector
	}
}

// Agent runs tree searches over one graph with a fixed strategy. It holds no
// per-search state, so one Agent may serve concurrent searches.
type Agent[S comparable] struct {
	graph    Graph[S]
	strategy Strategy
	settings
}

func NewAgent[S comparable](graph Graph[S], strategy Strategy, options ...Option) *Agent[S] {
	a := &Agent[S]{ // Default values
		graph:    graph,
		strategy: strategy,
		settings: settings{
			alpha:        DefaultAlpha,
			newCollector: metrics.NewDummyCollector,
		},
	}
	for _, option := range options {
		option(&a.settings)
	}
	return a
}

// Search is a shorthand for NewAgent(graph, strategy, options...).Search(initial, goal).
func Search[S comparable](graph Graph[S], initial, goal S, strategy Strategy, options ...Option) (Result[S], error) {
	return NewAgent(graph, strategy, options...).Search(initial, goal)
}

func (a *Agent[S]) Strategy() Strategy { return a.strategy }
func (a *Agent[S]) Alpha() float64     { return a.alpha }

// Search explores from initial until a node holding goal is removed from the
// frontier or the frontier runs dry. An error is only returned for an
// unknown strategy, in which case no node besides the root is built.
func (a *Agent[S]) Search(initial, goal S) (Result[S], error) {
	collector := a.newCollector()
	collector.Start(a.strategy.String(), a.alpha, a.cutoff)

	root := NewNode(initial, a.graph.Heuristic(initial)*a.alpha, 0, nil)
	collector.AddGenerated(1)

	frontier, err := NewFrontier[S](a.strategy)
	if err != nil {
		log.Error().Err(err).Msg("search aborted")
		return Result[S]{Outcome: InvalidConfiguration, Metrics: collector.Complete()}, err
	}
	frontier.Insert(root)
	collector.ObserveFrontier(frontier.Len())

	truncated := false
	expansions := 0
	for frontier.Len() > 0 {
		node := frontier.Remove()
		if node.state == goal {
			log.Info().Msgf("%s reached %v at depth %d with cost %g after %d expansions",
				a.strategy, goal, node.depth, node.cost, expansions)
			return Result[S]{
				Outcome:   GoalFound,
				Path:      summarize(node.Path()),
				Goal:      node,
				Truncated: truncated,
				Metrics:   collector.Complete(),
			}, nil
		}

		if a.maxExpansions > 0 && expansions >= a.maxExpansions {
			log.Warn().Msgf("%s stopped after %d expansions with %d nodes on the frontier",
				a.strategy, expansions, frontier.Len()+1)
			truncated = frontier.Len() > 0 || len(a.graph.Successors(node.state)) > 0
			break
		}
		if a.cutoff > 0 && node.depth >= a.cutoff {
			if len(a.graph.Successors(node.state)) > 0 {
				truncated = true
			}
			continue
		}

		children := Expand(a.graph, node, a.alpha)
		expansions++
		collector.AddExpansion()
		collector.AddGenerated(len(children))
		frontier.Insert(children...)
		collector.ObserveFrontier(frontier.Len())

		log.Debug().
			Stringer("node", node).
			Int("children", len(children)).
			Int("frontier", frontier.Len()).
			Msg("expanded")
	}

	log.Info().Msgf("%s exhausted the frontier after %d expansions without reaching %v", a.strategy, expansions, goal)
	return Result[S]{Outcome: Exhausted, Truncated: truncated, Metrics: collector.Complete()}, nil
}
