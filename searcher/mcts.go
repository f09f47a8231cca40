package searcher

import (
	"time"

	"jungo/game"
	"jungo/metrics"

	"github.com/rs/zerolog/log"
)

// MCTS grows a UCT search tree for the time or episode budget and plays the
// most visited move.
type MCTS struct {
	config
	metric metrics.SearchMetric
}

func NewMCTS(options ...Option) *MCTS {
	return &MCTS{config: newConfig(options)}
}

func (m *MCTS) Name() string {
	return "MCTS"
}

func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.metric
}

func (m *MCTS) FindMove(board *game.Board, color game.Color) (game.Point, bool) {
	return m.FindMoveWithHistory(board, color, nil)
}

func (m *MCTS) FindMoveWithHistory(board *game.Board, color game.Color, history []uint64) (game.Point, bool) {
	cutoff := m.rolloutCutoff(board, 1)
	m.metrics.Start(cutoff)
	defer func() { m.metric = m.metrics.Complete() }()

	moves := withoutKo(board, color, candidateMoves(board, color), history)
	switch len(moves) {
	case 0:
		return game.Point{}, false
	case 1:
		return moves[0], true
	}

	t := m.grow(board, color, moves, cutoff)
	best := t.mostVisited()
	if best < 0 { // Budget ran out before the first episode
		return moves[0], true
	}

	root, child := t.nodes[0], t.nodes[best]
	log.Debug().
		Stringer("color", color).
		Stringer("move", child.move).
		Int("episodes", root.visits).
		Int("visits", child.visits).
		Float64("winRate", child.rewards/float64(child.visits)).
		Int("nodes", len(t.nodes)).
		Msg("mcts search")
	return child.move, true
}

// candidateMoves lists the moves a node may expand: safeMoves, or every legal
// move when only eye fills are left.
func candidateMoves(board *game.Board, color game.Color) []game.Point {
	if moves := safeMoves(board, color); len(moves) > 0 {
		return moves
	}
	return board.LegalMoves(color)
}

func (m *MCTS) grow(board *game.Board, color game.Color, moves []game.Point, cutoff int) *tree {
	t := newTree(board, color, moves)
	start := time.Now()
	for done := 0; !m.exhausted(start, done); done++ {
		m.episode(t, board.Clone(), cutoff)
		m.metrics.AddEpisode()
	}
	return t
}

// episode runs one selection, expansion, simulation and backup pass on the
// working copy sim.
func (m *MCTS) episode(t *tree, sim *game.Board, cutoff int) {
	path := []int{0}
	cur := 0
	for len(t.nodes[cur].untried) == 0 && len(t.nodes[cur].children) > 0 {
		cur = t.selectChild(cur, m.exploration)
		_ = sim.Place(t.nodes[cur].move, t.nodes[cur].toMove.Opposite())
		path = append(path, cur)
	}

	if len(t.nodes[cur].untried) > 0 {
		color := t.nodes[cur].toMove
		move := t.pop(cur, m.rng.Intn)
		next := sim.Clone()
		_ = next.Place(move, color)

		// A move recreating the position two plies back on this path is
		// dropped for good and the episode simulates from cur instead.
		if len(path) < 2 || t.nodes[path[len(path)-2]].hash != next.Hash() {
			child := t.add(cur, node{
				move:    move,
				toMove:  color.Opposite(),
				hash:    next.Hash(),
				untried: candidateMoves(next, color.Opposite()),
			})
			path = append(path, child)
			sim = next
		}
	}

	winner, full := rollout(sim, t.nodes[path[len(path)-1]].toMove, cutoff, lightMove, m.rng)
	if full {
		m.metrics.AddFullPlayout()
	}
	t.backup(path, winner)
}
