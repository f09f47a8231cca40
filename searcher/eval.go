package searcher

import (
	"jungo/game"
	"jungo/meta"
)

// Evaluate scores board from color's point of view. Higher is better for color.
type Evaluate func(board *game.Board, color game.Color) float64

// EvaluateMaterial weighs the score difference and up to meta.SAFE_EYES eyes per side.
func EvaluateMaterial(board *game.Board, color game.Color) float64 {
	opponent := color.Opposite()
	material := board.Score(color) - board.Score(opponent)
	eyes := min(board.CountEyes(color), meta.SAFE_EYES) - min(board.CountEyes(opponent), meta.SAFE_EYES)
	return float64(material*100 + eyes*20)
}

// EvaluateSafety is EvaluateMaterial with a penalty for own groups in atari
// and a bonus for opposing ones.
func EvaluateSafety(board *game.Board, color game.Color) float64 {
	atari := board.Atari(color.Opposite()) - board.Atari(color)
	return EvaluateMaterial(board, color) + float64(atari*15)
}
