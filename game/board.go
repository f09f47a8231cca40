package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("position already occupied")
	ErrSuicide     = errors.New("move would be suicide without capture")
	ErrNoColor     = errors.New("stone must be black or white")
)

// Board is a square grid stored as a flat slice indexed y*size+x. The hash
// always equals the XOR of the keys of the occupied cells.
type Board struct {
	size     int
	grid     []Color
	captures [2]int // credit for black, white
	zobrist  *Zobrist
	hash     uint64
}

// NewBoard returns an empty board of size x size.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &Board{
		size:    size,
		grid:    make([]Color, size*size),
		zobrist: NewZobrist(size),
	}
}

// Clone returns an independent copy. The key table is shared since it never changes.
func (b *Board) Clone() *Board {
	grid := make([]Color, len(b.grid))
	copy(grid, b.grid)
	return &Board{
		size:     b.size,
		grid:     grid,
		captures: b.captures,
		zobrist:  b.zobrist,
		hash:     b.hash,
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

func (b *Board) index(p Point) int {
	return p.Y*b.size + p.X
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.size, Y: i / b.size}
}

// Get returns the color at p, None when empty. Callers must validate p
// against Size first: an out-of-range point is a programming error.
func (b *Board) Get(p Point) Color {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("point %v outside %dx%d board", p, b.size, b.size))
	}
	return b.grid[b.index(p)]
}

// neighbors writes the orthogonal neighbors of cell i into buf, in the order
// left, right, up, down, and returns the filled part.
func (b *Board) neighbors(i int, buf *[4]int) []int {
	n := 0
	x, y := i%b.size, i/b.size
	if x > 0 {
		buf[n] = i - 1
		n++
	}
	if x < b.size-1 {
		buf[n] = i + 1
		n++
	}
	if y > 0 {
		buf[n] = i - b.size
		n++
	}
	if y < b.size-1 {
		buf[n] = i + b.size
		n++
	}
	return buf[:n]
}

// Check reports why color c cannot play at p, or nil when the move is legal.
// A capture always overrides suicide.
func (b *Board) Check(p Point, c Color) error {
	if c != Black && c != White {
		return ErrNoColor
	}
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	i := b.index(p)
	if b.grid[i] != None {
		return ErrOccupied
	}

	var buf [4]int
	adjacent := b.neighbors(i, &buf)
	opponent := c.Opposite()

	for _, n := range adjacent {
		if b.grid[n] == opponent && !b.hasLibertyExcept(n, i) {
			return nil
		}
	}
	for _, n := range adjacent {
		if b.grid[n] == None {
			return nil
		}
	}
	for _, n := range adjacent {
		if b.grid[n] == c && b.hasLibertyExcept(n, i) {
			return nil
		}
	}
	return ErrSuicide
}

// IsLegal reports whether color c may play at p.
func (b *Board) IsLegal(p Point, c Color) bool {
	return b.Check(p, c) == nil
}

// LegalMoves lists the legal points for c, rows top to bottom, columns left to right.
func (b *Board) LegalMoves(c Color) []Point {
	moves := make([]Point, 0, len(b.grid))
	for i, cell := range b.grid {
		if cell != None {
			continue
		}
		p := b.point(i)
		if b.IsLegal(p, c) {
			moves = append(moves, p)
		}
	}
	return moves
}

// Place puts a stone of color c on p, removes every adjacent opposing group
// left without liberties and credits c with the removed stones. If the new
// stone's own group ends up without liberties it is removed as well, with no
// credit to anyone. Place does not check suicide; use IsLegal for that.
func (b *Board) Place(p Point, c Color) error {
	if c != Black && c != White {
		return errors.Wrapf(ErrNoColor, "place %v", c)
	}
	if !b.InBounds(p) {
		return errors.Wrapf(ErrOutOfBounds, "place %v", p)
	}
	i := b.index(p)
	if b.grid[i] != None {
		return errors.Wrapf(ErrOccupied, "place %v", p)
	}
	b.place(i, c)
	return nil
}

// place applies the move at cell i and returns the number of opposing stones captured.
func (b *Board) place(i int, c Color) int {
	b.grid[i] = c
	b.hash ^= b.zobrist.KeyFor(i, c)

	var buf [4]int
	opponent := c.Opposite()
	captured := 0
	for _, n := range b.neighbors(i, &buf) {
		// A group adjacent on two sides is already gone after the first removal.
		if b.grid[n] != opponent {
			continue
		}
		group := b.group(n)
		if !b.hasLiberty(group) {
			b.remove(group)
			captured += len(group)
		}
	}

	if own := b.group(i); !b.hasLiberty(own) {
		b.remove(own)
	}

	b.captures[c-1] += captured
	return captured
}

func (b *Board) remove(group []int) {
	for _, i := range group {
		b.hash ^= b.zobrist.KeyFor(i, b.grid[i])
		b.grid[i] = None
	}
}

// CountStones returns the number of black and white stones on the board.
func (b *Board) CountStones() (black, white int) {
	for _, cell := range b.grid {
		switch cell {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Captures returns the capture credit of black and white.
func (b *Board) Captures() (black, white int) {
	return b.captures[0], b.captures[1]
}

// Score is stones on the board plus capture credit. There is no territory.
func (b *Board) Score(c Color) int {
	black, white := b.CountStones()
	switch c {
	case Black:
		return black + b.captures[0]
	case White:
		return white + b.captures[1]
	}
	return 0
}

// Winner compares both scores; None means a draw.
func (b *Board) Winner() Color {
	black, white := b.Score(Black), b.Score(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return None
}

func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) IsEmpty() bool {
	for _, cell := range b.grid {
		if cell != None {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < b.size; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < b.size; x++ {
			switch b.grid[y*b.size+x] {
			case Black:
				sb.WriteString(" X")
			case White:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Captured: Black=%d, White=%d\n", b.captures[0], b.captures[1])
	return sb.String()
}
