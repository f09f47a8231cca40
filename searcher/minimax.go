package searcher

import (
	"fmt"
	"math"

	"jungo/game"
	"jungo/meta"
	"jungo/metrics"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited alpha-beta search. Leaves are scored with the
// evaluation function from the searching color's point of view.
type Minimax struct {
	depth    int
	evaluate Evaluate
	metrics  metrics.Collector
	metric   metrics.SearchMetric
}

// NewMinimax returns a searcher looking depth plies ahead; a non-positive
// depth falls back to meta.MINIMAX_DEPTH.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth <= 0 {
		depth = meta.MINIMAX_DEPTH
	}
	c := newConfig(options)
	return &Minimax{
		depth:    depth,
		evaluate: c.evaluate,
		metrics:  c.metrics,
	}
}

func (m *Minimax) Name() string {
	return fmt.Sprintf("Minimax(%d)", m.depth)
}

func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.metric
}

func (m *Minimax) FindMove(board *game.Board, color game.Color) (game.Point, bool) {
	return m.FindMoveWithHistory(board, color, nil)
}

func (m *Minimax) FindMoveWithHistory(board *game.Board, color game.Color, history []uint64) (game.Point, bool) {
	m.metrics.Start(m.depth)
	defer func() { m.metric = m.metrics.Complete() }()

	root := line{board.Hash()}
	var best game.Point
	found := false
	bestScore := math.Inf(-1)
	for _, p := range withoutKo(board, color, board.LegalMoves(color), history) {
		child := board.Clone()
		_ = child.Place(p, color)
		score := m.search(child, m.depth-1, math.Inf(-1), math.Inf(1), false, color, append(root, child.Hash()))
		// Strictly greater keeps the first move on ties
		if !found || score > bestScore {
			best, bestScore, found = p, score, true
		}
	}

	if found {
		log.Debug().Stringer("color", color).Stringer("move", best).Float64("score", bestScore).Msg("minimax search")
	}
	return best, found
}

// search returns the minimax value of board for me. The side to move is me
// when maximizing and the opponent otherwise.
func (m *Minimax) search(board *game.Board, depth int, alpha, beta float64, maximizing bool, me game.Color, path line) float64 {
	if depth == 0 {
		return m.eval(board, me)
	}

	color := me
	value := math.Inf(-1)
	if !maximizing {
		color = me.Opposite()
		value = math.Inf(1)
	}

	searched := false
	for _, p := range board.LegalMoves(color) {
		child := board.Clone()
		_ = child.Place(p, color)
		if !path.allows(child.Hash()) {
			continue
		}
		searched = true

		score := m.search(child, depth-1, alpha, beta, !maximizing, me, append(path, child.Hash()))
		if maximizing {
			value = max(value, score)
			alpha = max(alpha, value)
		} else {
			value = min(value, score)
			beta = min(beta, value)
		}
		if beta <= alpha {
			break
		}
	}

	if !searched {
		return m.eval(board, me)
	}
	return value
}

func (m *Minimax) eval(board *game.Board, color game.Color) float64 {
	m.metrics.AddEvaluation()
	return m.evaluate(board, color)
}
