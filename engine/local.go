package engine

import (
	"time"

	"jungo/game"
	"jungo/gamemaster"
	"jungo/meta"
	"jungo/metrics"
	"jungo/searcher"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

// Local pairs two agents through one Controller in the current process.
type Local struct {
	Controller *gamemaster.Controller
	Agents     [2]searcher.Agent // Black, White
	MaxTurns   int
}

func LocalEngine(size int, black, white searcher.Agent) *Local {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}
	return &Local{
		Controller: gamemaster.NewController(size),
		Agents:     [2]searcher.Agent{black, white},
		MaxTurns:   meta.MAX_TURNS,
	}
}

func (e *Local) agent(color game.Color) searcher.Agent {
	return e.Agents[color-1]
}

// Run executes the game loop until the game is finished or MaxTurns turns
// (moves and passes) have been played.
func (e *Local) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	ctrl := e.Controller
	start := time.Now()
	log.Info().Msgf("game %s: %s (Black) vs %s (White) on %dx%d",
		ctrl.ID(), e.Agents[0].Name(), e.Agents[1].Name(), ctrl.Board().Size(), ctrl.Board().Size())

	var moveMetrics []metrics.MoveMetric
	turn := 0
	for !ctrl.IsFinished() && turn < e.MaxTurns {
		turn++
		color := ctrl.CurrentColor()
		agent := e.agent(color)

		move, ok := e.findMove(agent, color)
		record := metrics.MoveMetric{Step: turn, Player: color, Agent: agent.Name()}
		if reporter, isReporter := agent.(searcher.Reporter); isReporter {
			record.SearchMetric = reporter.Metrics()
		}

		if ok {
			if err := ctrl.SubmitMove(move); err != nil {
				log.Warn().Err(err).Str("game", ctrl.ID()).Str("agent", agent.Name()).Msg("move rejected, falling back")
				record.Rejected = true
				move, ok = e.fallback()
			}
		}
		if !ok {
			// Cannot fail while the game is in progress
			_ = ctrl.SubmitPass()
		}
		record.Point, record.Pass = move, !ok
		moveMetrics = append(moveMetrics, record)
	}

	winner := ctrl.Winner()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		ID:         ctrl.ID(),
		Winner:     winner,
		BlackScore: ctrl.Score(game.Black),
		WhiteScore: ctrl.Score(game.White),
		Finished:   ctrl.IsFinished(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: ctrl.Moves(),
	}

	if gameMetric.Finished {
		log.Info().Msgf("game %s over after %d turns: winner %v, Black %d, White %d",
			ctrl.ID(), turn, winner, gameMetric.BlackScore, gameMetric.WhiteScore)
	} else {
		log.Info().Msgf("game %s stopped after %d turns (no result yet)", ctrl.ID(), turn)
	}
	return winner, gameMetric, moveMetrics
}

// findMove hands the agent a copy of the live board, plus the position history
// when the agent can use it to avoid a Ko recapture.
func (e *Local) findMove(agent searcher.Agent, color game.Color) (game.Point, bool) {
	if aware, ok := agent.(searcher.KoAware); ok {
		return aware.FindMoveWithHistory(e.Controller.Board(), color, e.Controller.History())
	}
	return agent.FindMove(e.Controller.Board(), color)
}

// fallback plays the first move the Controller accepts, or reports a pass if there is none.
func (e *Local) fallback() (game.Point, bool) {
	moves := e.Controller.LegalMoves()
	if len(moves) == 0 {
		return game.Point{}, false
	}
	if err := e.Controller.SubmitMove(moves[0]); err != nil {
		panic("controller rejected its own legal move: " + err.Error())
	}
	return moves[0], true
}
