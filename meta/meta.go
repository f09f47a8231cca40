// meta/meta.go
package meta

import "time"

// BOARD_SIZE is the default board size for new games.
const BOARD_SIZE = 9

// MAX_TURNS caps the number of turns (moves and passes) in a local game.
const MAX_TURNS = 1000

// MINIMAX_DEPTH is the default search depth for Minimax.
const MINIMAX_DEPTH = 3

// DURATION is the default time budget for MonteCarlo and MCTS.
const DURATION = time.Second

// EXPLORATION is the UCT exploration constant for MCTS.
const EXPLORATION = 1.4

// NON_EYE_PROBABILITY is how often the Random policy prefers a non-eye move when it holds more than 2 eyes.
const NON_EYE_PROBABILITY = 0.8

// SAFE_EYES is the number of eyes a color never fills itself.
const SAFE_EYES = 2

// RANDOM_PROBES is how many random empty points a light rollout tries before scanning the rest.
const RANDOM_PROBES = 20
