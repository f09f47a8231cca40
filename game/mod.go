package game

import "fmt"

// Color is the content of a cell. None marks an empty cell.
type Color uint8

const (
	None Color = iota
	Black
	White
)

// Opposite returns the other player's color. None has no opposite.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Point is a board coordinate, x is the column and y the row.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
