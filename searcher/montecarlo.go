package searcher

import (
	"time"

	"jungo/game"
	"jungo/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MonteCarlo scores every candidate move by the share of random playouts it
// wins, cycling through the candidates until the budget runs out.
type MonteCarlo struct {
	config
	metric metrics.SearchMetric
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	return &MonteCarlo{config: newConfig(options)}
}

func (m *MonteCarlo) Name() string {
	return "MonteCarlo"
}

func (m *MonteCarlo) Metrics() metrics.SearchMetric {
	return m.metric
}

func (m *MonteCarlo) FindMove(board *game.Board, color game.Color) (game.Point, bool) {
	return m.FindMoveWithHistory(board, color, nil)
}

func (m *MonteCarlo) FindMoveWithHistory(board *game.Board, color game.Color, history []uint64) (game.Point, bool) {
	cutoff := m.rolloutCutoff(board, 2)
	m.metrics.Start(cutoff)
	defer func() { m.metric = m.metrics.Complete() }()

	candidates := withoutKo(board, color, safeMoves(board, color), history)
	if len(candidates) == 0 {
		return game.Point{}, false
	}

	wins := make([]int, len(candidates))
	plays := make([]int, len(candidates))
	start := time.Now()
	for done := 0; !m.exhausted(start, done); done++ {
		i := done % len(candidates)
		if simulate(board, color, candidates[i], cutoff, m.rng, m.metrics) == color {
			wins[i]++
		}
		plays[i]++
	}

	best, bestRate := 0, 0.0
	for i := range candidates {
		if plays[i] == 0 {
			continue
		}
		if rate := float64(wins[i]) / float64(plays[i]); rate > bestRate {
			best, bestRate = i, rate
		}
	}

	log.Debug().
		Stringer("color", color).
		Stringer("move", candidates[best]).
		Int("candidates", len(candidates)).
		Float64("winRate", bestRate).
		Msg("monte carlo search")
	return candidates[best], true
}

// simulate plays move for color on a clone of board, rolls the game out with
// the eye-aware policy and returns the winner.
func simulate(board *game.Board, color game.Color, move game.Point, cutoff int, rng *rand.Rand, collector metrics.Collector) game.Color {
	sim := board.Clone()
	_ = sim.Place(move, color)
	winner, full := rollout(sim, color.Opposite(), cutoff, randomMove, rng)
	collector.AddEpisode()
	if full {
		collector.AddFullPlayout()
	}
	return winner
}
