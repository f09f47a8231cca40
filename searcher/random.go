package searcher

import (
	"jungo/game"

	"golang.org/x/exp/rand"
)

// Random plays the eye-aware random policy.
type Random struct {
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	c := newConfig(options)
	return &Random{rng: c.rng}
}

func (r *Random) Name() string {
	return "Random"
}

func (r *Random) FindMove(board *game.Board, color game.Color) (game.Point, bool) {
	return randomMove(board, color, r.rng)
}
