package searcher

import (
	"jungo/game"
	"jungo/meta"

	"golang.org/x/exp/rand"
)

// policy picks a move for a rollout, or false to pass.
type policy func(board *game.Board, color game.Color, rng *rand.Rand) (game.Point, bool)

// partition splits the legal moves of color into the ones filling its own eyes and the rest.
func partition(board *game.Board, color game.Color) (nonEye, eye []game.Point) {
	for _, p := range board.LegalMoves(color) {
		if board.IsEye(p, color) {
			eye = append(eye, p)
		} else {
			nonEye = append(nonEye, p)
		}
	}
	return nonEye, eye
}

// safeMoves lists the moves a search considers for color: all legal moves,
// except that a color holding at most meta.SAFE_EYES eyes never fills one.
func safeMoves(board *game.Board, color game.Color) []game.Point {
	if board.CountEyes(color) > meta.SAFE_EYES {
		return board.LegalMoves(color)
	}
	nonEye, _ := partition(board, color)
	return nonEye
}

// randomMove is the eye-aware policy. With more than meta.SAFE_EYES eyes an
// eye is filled now and then, otherwise only non-eye points are played.
func randomMove(board *game.Board, color game.Color, rng *rand.Rand) (game.Point, bool) {
	nonEye, eye := partition(board, color)
	if board.CountEyes(color) > meta.SAFE_EYES && len(eye) > 0 {
		if len(nonEye) > 0 && rng.Float64() < meta.NON_EYE_PROBABILITY {
			return nonEye[rng.Intn(len(nonEye))], true
		}
		return eye[rng.Intn(len(eye))], true
	}
	if len(nonEye) == 0 {
		return game.Point{}, false
	}
	return nonEye[rng.Intn(len(nonEye))], true
}

// lightMove is the fast policy used by MCTS rollouts. It probes up to
// meta.RANDOM_PROBES random empty points, then scans the remaining ones in
// order. Eyes are not protected.
func lightMove(board *game.Board, color game.Color, rng *rand.Rand) (game.Point, bool) {
	size := board.Size()
	empty := make([]game.Point, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if p := (game.Point{X: x, Y: y}); board.Get(p) == game.None {
				empty = append(empty, p)
			}
		}
	}

	for probe := 0; probe < meta.RANDOM_PROBES && len(empty) > 0; probe++ {
		i := rng.Intn(len(empty))
		if board.IsLegal(empty[i], color) {
			return empty[i], true
		}
		empty[i] = empty[len(empty)-1]
		empty = empty[:len(empty)-1]
	}
	for _, p := range empty {
		if board.IsLegal(p, color) {
			return p, true
		}
	}
	return game.Point{}, false
}

// rollout plays board out from color to move with move until two consecutive
// passes or cutoff plies. full reports whether the game ended on passes.
func rollout(board *game.Board, color game.Color, cutoff int, move policy, rng *rand.Rand) (winner game.Color, full bool) {
	passes := 0
	for ply := 0; ply < cutoff; ply++ {
		if p, ok := move(board, color, rng); ok {
			// p is legal, so Place cannot fail
			_ = board.Place(p, color)
			passes = 0
		} else {
			passes++
			if passes >= 2 {
				return board.Winner(), true
			}
		}
		color = color.Opposite()
	}
	return board.Winner(), false
}
