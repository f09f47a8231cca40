package engine

import (
	"jungo/game"
	"jungo/metrics"
)

type Engine interface {
	// Run plays a game until both sides pass or the turn cap is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
