package searcher

import "jungo/game"

const WIN = 1.0
const LOSS = 0.0

// rewarder scores a finished playout for each player. A draw is a loss for both.
func rewarder(winner game.Color) func(player game.Color) float64 {
	return func(player game.Color) float64 {
		if player == winner {
			return WIN
		}
		return LOSS
	}
}
