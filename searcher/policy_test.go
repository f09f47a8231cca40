package searcher

import (
	"testing"

	"jungo/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomMove(t *testing.T) {
	t.Run("never fills an eye with two or fewer", func(t *testing.T) {
		b := game.NewBoard(5)
		place(t, b, game.Black, game.Point{X: 1, Y: 2}, game.Point{X: 3, Y: 2}, game.Point{X: 2, Y: 1}, game.Point{X: 2, Y: 3})
		require.True(t, b.IsEye(game.Point{X: 2, Y: 2}, game.Black))
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 200; i++ {
			move, ok := randomMove(b, game.Black, rng)
			require.True(t, ok)
			require.NotEqual(t, game.Point{X: 2, Y: 2}, move, "Should not fill the only eye")
			require.True(t, b.IsLegal(move, game.Black))
		}
	})

	t.Run("passes when only eye fills are left", func(t *testing.T) {
		b := twoEyes(t)
		rng := rand.New(rand.NewSource(1))

		require.Len(t, b.LegalMoves(game.Black), 2, "Both eyes are legal points")
		_, ok := randomMove(b, game.Black, rng)
		require.False(t, ok, "Should pass rather than fill one of two eyes")
		_, ok = randomMove(b, game.White, rng)
		require.False(t, ok, "White has no legal move")
	})

	t.Run("mostly avoids eyes with more than two", func(t *testing.T) {
		b := threeEyes(t)
		rng := rand.New(rand.NewSource(1))

		eyes := 0
		for i := 0; i < 200; i++ {
			move, ok := randomMove(b, game.Black, rng)
			require.True(t, ok)
			require.True(t, b.IsLegal(move, game.Black))
			if b.IsEye(move, game.Black) {
				eyes++
			}
		}
		require.Greater(t, eyes, 0, "Eye fills are occasionally allowed")
		require.Less(t, eyes, 100, "Non-eye moves are preferred")
	})
}

func TestSafeMoves(t *testing.T) {
	require.Empty(t, safeMoves(twoEyes(t), game.Black))
	require.Empty(t, candidateMoves(twoEyes(t), game.White))
	require.Equal(t, []game.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, candidateMoves(twoEyes(t), game.Black), "Falls back to every legal move")

	b := threeEyes(t)
	require.Equal(t, b.LegalMoves(game.Black), safeMoves(b, game.Black), "More than two eyes allows every legal move")
}

func TestLightMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	move, ok := lightMove(lastMove(t), game.White, rng)
	require.True(t, ok)
	require.Equal(t, game.Point{X: 1, Y: 1}, move)

	_, ok = lightMove(lastMove(t), game.Black, rng)
	require.False(t, ok)

	b := game.NewBoard(5)
	for i := 0; i < 50; i++ {
		move, ok := lightMove(b, game.Black, rng)
		require.True(t, ok)
		require.True(t, b.IsLegal(move, game.Black))
	}
}

func TestRollout(t *testing.T) {
	t.Run("ends on two passes", func(t *testing.T) {
		b := twoEyes(t)
		rng := rand.New(rand.NewSource(1))

		winner, full := rollout(b, game.White, 10, randomMove, rng)

		require.True(t, full)
		require.Equal(t, game.Black, winner)
	})

	t.Run("stops at the cutoff", func(t *testing.T) {
		b := game.NewBoard(5)
		rng := rand.New(rand.NewSource(1))

		_, full := rollout(b, game.Black, 6, lightMove, rng)

		black, white := b.CountStones()
		require.False(t, full)
		require.LessOrEqual(t, black+white, 6)
		require.Greater(t, black+white, 0)
	})
}

func TestLine(t *testing.T) {
	require.True(t, line{}.allows(1))
	require.True(t, line{1}.allows(1))
	require.False(t, line{1, 2}.allows(1), "Should reject the position two plies back")
	require.True(t, line{1, 2}.allows(3))
	require.True(t, line{1, 2, 3}.allows(1))
}
