package searcher

import (
	"testing"

	"jungo/game"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterial(t *testing.T) {
	b := game.NewBoard(5)
	place(t, b, game.White, game.Point{X: 0, Y: 0})
	place(t, b, game.Black, game.Point{X: 1, Y: 0}, game.Point{X: 0, Y: 1})

	require.Equal(t, 300.0, EvaluateMaterial(b, game.Black), "Two stones plus a capture against nothing")
	require.Equal(t, -300.0, EvaluateMaterial(b, game.White))

	require.Equal(t, 740.0, EvaluateMaterial(threeEyes(t), game.Black), "Eyes count up to two")
}

func TestEvaluateSafety(t *testing.T) {
	b := game.NewBoard(5)
	place(t, b, game.White, game.Point{X: 2, Y: 2})
	place(t, b, game.Black, game.Point{X: 1, Y: 2}, game.Point{X: 3, Y: 2}, game.Point{X: 2, Y: 1})

	require.Equal(t, 200.0, EvaluateMaterial(b, game.Black))
	require.Equal(t, 215.0, EvaluateSafety(b, game.Black), "Opposing group in atari is a bonus")
	require.Equal(t, -215.0, EvaluateSafety(b, game.White), "Own group in atari is a penalty")
}
