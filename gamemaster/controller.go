package gamemaster

import (
	"jungo/game"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver = errors.New("game is over - no moves allowed")
	ErrKo       = errors.New("ko: move recreates the position from two plies back")
)

type Status int

const (
	InProgress Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "Finished"
	}
	return "InProgress"
}

// Controller owns the live board of one game. It alternates turns starting
// with Black, enforces simple Ko against the position two plies back and ends
// the game after two consecutive passes.
type Controller struct {
	id      string
	board   *game.Board
	turn    game.Color
	passes  int
	moves   int
	history []uint64 // one hash per realized position, starting with the empty board
	status  Status
}

func NewController(size int) *Controller {
	board := game.NewBoard(size)
	return &Controller{
		id:      uuid.NewString(),
		board:   board,
		turn:    game.Black,
		history: []uint64{board.Hash()},
		status:  InProgress,
	}
}

func (c *Controller) ID() string {
	return c.id
}

// Board returns a copy of the live board, safe to hand to an agent.
func (c *Controller) Board() *game.Board {
	return c.board.Clone()
}

func (c *Controller) CurrentColor() game.Color {
	return c.turn
}

func (c *Controller) Status() Status {
	return c.status
}

func (c *Controller) IsFinished() bool {
	return c.status == Finished
}

// Passes returns the number of consecutive passes so far.
func (c *Controller) Passes() int {
	return c.passes
}

// Moves returns the number of stones committed so far.
func (c *Controller) Moves() int {
	return c.moves
}

// History returns a copy of the position hashes, oldest first.
func (c *Controller) History() []uint64 {
	history := make([]uint64, len(c.history))
	copy(history, c.history)
	return history
}

// SubmitMove plays p for the current color. A rejected move leaves the game
// untouched: the error wraps game.ErrOutOfBounds, game.ErrOccupied,
// game.ErrSuicide, or is ErrKo or ErrGameOver.
func (c *Controller) SubmitMove(p game.Point) error {
	next, err := c.try(p)
	if err != nil {
		return err
	}

	c.board = next
	c.history = append(c.history, next.Hash())
	c.passes = 0
	c.moves++
	c.turn = c.turn.Opposite()
	return nil
}

// try applies p to a scratch copy of the board and returns it if the move is allowed.
func (c *Controller) try(p game.Point) (*game.Board, error) {
	if c.status == Finished {
		return nil, ErrGameOver
	}
	if err := c.board.Check(p, c.turn); err != nil {
		return nil, errors.Wrapf(err, "%v at %v", c.turn, p)
	}

	next := c.board.Clone()
	if err := next.Place(p, c.turn); err != nil {
		return nil, err
	}
	if n := len(c.history); n >= 2 && c.history[n-2] == next.Hash() {
		log.Debug().Str("game", c.id).Stringer("color", c.turn).Stringer("point", p).Msg("ko rejected")
		return nil, ErrKo
	}
	return next, nil
}

// SubmitPass passes the turn. The second consecutive pass finishes the game.
func (c *Controller) SubmitPass() error {
	if c.status == Finished {
		return ErrGameOver
	}
	c.passes++
	c.turn = c.turn.Opposite()
	if c.passes >= 2 {
		c.status = Finished
	}
	return nil
}

// LegalMoves lists the points the current color may play, Ko included.
func (c *Controller) LegalMoves() []game.Point {
	if c.status == Finished {
		return nil
	}
	var moves []game.Point
	for _, p := range c.board.LegalMoves(c.turn) {
		if _, err := c.try(p); err == nil {
			moves = append(moves, p)
		}
	}
	return moves
}

// Score is stones on the board plus capture credit for color.
func (c *Controller) Score(color game.Color) int {
	return c.board.Score(color)
}

// Winner returns the color with the higher score, game.None on a draw.
func (c *Controller) Winner() game.Color {
	return c.board.Winner()
}
