package metrics

import (
	"time"

	"jungo/game"
)

type MoveMetric struct {
	Step     int
	Player   game.Color
	Agent    string
	Point    game.Point
	Pass     bool
	Rejected bool // The agent's choice was refused and replaced by a fallback
	SearchMetric
}

type GameMetric struct {
	ID         string
	Winner     game.Color // None for a draw
	BlackScore int
	WhiteScore int
	Finished   bool // False when the turn cap stopped the game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}
