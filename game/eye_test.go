package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsEye(t *testing.T) {
	t.Run("interior point surrounded on four sides", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, Black, Point{1, 2}, Point{3, 2}, Point{2, 1}, Point{2, 3})

		require.True(t, b.IsEye(Point{2, 2}, Black), "Should be an eye for the surrounding color")
		require.False(t, b.IsEye(Point{2, 2}, White), "Should not be an eye for the opponent")
	})

	t.Run("interior point tolerates one opposing diagonal", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, Black, Point{1, 2}, Point{3, 2}, Point{2, 1}, Point{2, 3})
		play(t, b, White, Point{1, 1})

		require.True(t, b.IsEye(Point{2, 2}, Black), "One opposing diagonal is tolerated")

		play(t, b, White, Point{3, 3})
		require.False(t, b.IsEye(Point{2, 2}, Black), "Two opposing diagonals make a false eye")
	})

	t.Run("missing orthogonal neighbor", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, Black, Point{1, 2}, Point{3, 2}, Point{2, 1})

		require.False(t, b.IsEye(Point{2, 2}, Black))
		require.False(t, b.IsEye(Point{2, 2}, White))
	})

	t.Run("corner needs its diagonal", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, White, Point{1, 0}, Point{0, 1})
		require.False(t, b.IsEye(Point{0, 0}, White), "Corner without the diagonal is not an eye")

		play(t, b, White, Point{1, 1})
		require.True(t, b.IsEye(Point{0, 0}, White), "Corner with the diagonal is an eye")
	})

	t.Run("edge allows no opposing diagonal", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, Black, Point{0, 0}, Point{2, 0}, Point{1, 1})
		require.True(t, b.IsEye(Point{1, 0}, Black))

		play(t, b, White, Point{0, 1})
		require.False(t, b.IsEye(Point{1, 0}, Black))
	})

	t.Run("occupied point is never an eye", func(t *testing.T) {
		b := NewBoard(5)
		play(t, b, Black, Point{1, 2}, Point{3, 2}, Point{2, 1}, Point{2, 3}, Point{2, 2})

		require.False(t, b.IsEye(Point{2, 2}, Black))
	})

	t.Run("single cell board has no eyes", func(t *testing.T) {
		b := NewBoard(1)
		require.False(t, b.IsEye(Point{0, 0}, Black))
	})
}

func TestCountEyes(t *testing.T) {
	b := NewBoard(5)
	play(t, b, Black,
		Point{1, 0}, Point{0, 1}, Point{2, 1}, Point{1, 2},
		Point{3, 0}, Point{4, 1}, Point{3, 2},
	)

	// (1,1) and (3,1) in the interior, (2,0) on the edge.
	require.Equal(t, 3, b.CountEyes(Black))
	require.Equal(t, 0, b.CountEyes(White))
}
