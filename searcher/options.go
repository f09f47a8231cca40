package searcher

import (
	"time"

	"jungo/game"
	"jungo/meta"
	"jungo/metrics"

	"golang.org/x/exp/rand"
)

type Option func(c *config)

type config struct {
	duration    time.Duration
	episodes    int
	cutoff      int
	exploration float64
	rng         *rand.Rand
	evaluate    Evaluate
	metrics     metrics.Collector
}

func newConfig(options []Option) config {
	c := config{ // Default values
		duration:    meta.DURATION,
		exploration: meta.EXPLORATION,
		evaluate:    EvaluateMaterial,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

// WithDuration sets the time budget of a search. It is ignored when WithEpisodes is also given.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of simulations instead of searching against the clock.
func WithEpisodes(episodes int) Option {
	return func(c *config) {
		if episodes > 0 {
			c.episodes = episodes
		}
	}
}

// WithCutoff caps the number of plies in a rollout.
func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.cutoff = depth
		}
	}
}

func WithExploration(constant float64) Option {
	return func(c *config) {
		if constant > 0 {
			c.exploration = constant
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

// exhausted reports whether a search started at start that has run done
// simulations should stop. The clock is only polled between simulations.
func (c *config) exhausted(start time.Time, done int) bool {
	if c.episodes > 0 {
		return done >= c.episodes
	}
	return time.Since(start) >= c.duration
}

// rolloutCutoff returns the configured cutoff, or perCell plies per board cell.
func (c *config) rolloutCutoff(board *game.Board, perCell int) int {
	if c.cutoff > 0 {
		return c.cutoff
	}
	size := board.Size()
	return perCell * size * size
}
