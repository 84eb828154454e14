package metrics

import "time"

type SearchMetric struct {
	Strategy    string
	Alpha       float64
	Cutoff      int
	Duration    time.Duration
	Generated   int // Nodes built, root included
	Expanded    int
	MaxFrontier int
}

// Collector gathers the counters of a single search. It is not safe for
// concurrent use; every search builds its own.
type Collector interface {
	Start(strategy string, alpha float64, cutoff int)
	AddGenerated(n int)
	AddExpansion()
	ObserveFrontier(size int)
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	alpha       float64
	cutoff      int
	startTime   time.Time
	generated   int
	expanded    int
	maxFrontier int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, alpha float64, cutoff int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.alpha = alpha
	m.cutoff = cutoff
}

func (m *collector) AddGenerated(n int) {
	m.generated += n
}

func (m *collector) AddExpansion() {
	m.expanded++
}

func (m *collector) ObserveFrontier(size int) {
	if size > m.maxFrontier {
		m.maxFrontier = size
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Alpha:       m.alpha,
		Cutoff:      m.cutoff,
		Duration:    time.Since(m.startTime),
		Generated:   m.generated,
		Expanded:    m.expanded,
		MaxFrontier: m.maxFrontier,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, alpha float64, cutoff int) {}
func (m *dummyCollector) AddGenerated(n int)                               {}
func (m *dummyCollector) AddExpansion()                                    {}
func (m *dummyCollector) ObserveFrontier(size int)                         {}
func (m *dummyCollector) Complete() SearchMetric                           { return SearchMetric{} }
