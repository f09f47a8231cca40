package searcher

import (
	"jungo/game"
	"jungo/metrics"
)

type Agent interface {
	Name() string
	// FindMove returns the point to play for color, or false to pass. The
	// board is never mutated; agents explore on their own clones.
	FindMove(board *game.Board, color game.Color) (game.Point, bool)
}

// KoAware is implemented by agents that also take the game's position
// history, oldest first and ending with the hash of board. They never choose a
// move that recreates the position before board.
type KoAware interface {
	FindMoveWithHistory(board *game.Board, color game.Color, history []uint64) (game.Point, bool)
}

// Reporter is implemented by agents that measure their last search.
type Reporter interface {
	Metrics() metrics.SearchMetric
}
