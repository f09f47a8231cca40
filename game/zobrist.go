package game

import "golang.org/x/exp/rand"

// ZobristSeed fixes the key tables so hashes are reproducible across runs.
const ZobristSeed = 42

// Zobrist holds one random key per (cell, color). It is immutable once built,
// so a board and all its clones share one table.
type Zobrist struct {
	size int
	keys []uint64 // 2 keys per cell: black, white
}

// NewZobrist builds the key table for a board of the given size. Tables of the
// same size hold the same keys.
func NewZobrist(size int) *Zobrist {
	rng := rand.New(rand.NewSource(ZobristSeed))
	z := &Zobrist{size: size, keys: make([]uint64, size*size*2)}
	for i := range z.keys {
		z.keys[i] = rng.Uint64()
	}
	return z
}

// KeyFor returns the key of a stone of color c on cell index i.
func (z *Zobrist) KeyFor(i int, c Color) uint64 {
	switch c {
	case Black:
		return z.keys[i*2]
	case White:
		return z.keys[i*2+1]
	}
	panic("no zobrist key for an empty cell")
}

func (z *Zobrist) Size() int {
	return z.size
}
