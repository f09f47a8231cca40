package main

import (
	"os"
	"time"

	"jungo/engine"
	"jungo/meta"
	"jungo/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	black := searcher.NewMCTS(searcher.WithDuration(meta.DURATION), searcher.WithMetrics())
	white := searcher.NewMinimax(meta.MINIMAX_DEPTH, searcher.WithMetrics())

	e := engine.LocalEngine(meta.BOARD_SIZE, black, white)
	winner, gameMetric, moveMetrics := e.Run()

	episodes := 0
	for _, m := range moveMetrics {
		episodes += m.Episodes
	}
	log.Info().Msgf("winner %v after %d moves in %v (%d MCTS episodes)",
		winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond), episodes)
	log.Info().Msg("\n" + e.Controller.Board().String())
}
