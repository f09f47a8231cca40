package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises one move search.
type SearchMetric struct {
	Duration     time.Duration
	Episodes     int // Simulations (MonteCarlo, MCTS)
	FullPlayouts int // Rollouts that ended on two passes before the move cap
	Evaluations  int // Static evaluations (Minimax)
	Cutoff       int
}

type Collector interface {
	Start(cutoff int)
	AddEpisode()
	AddFullPlayout()
	AddEvaluation()
	Complete() SearchMetric
}

// Counters are atomic so rollouts may later run on several goroutines, each
// on its own board clone, without changing the collector.
type collector struct {
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	evaluations  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(cutoff int) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Evaluations:  int(m.evaluations.Load()),
		Cutoff:       m.cutoff,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int)       {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
