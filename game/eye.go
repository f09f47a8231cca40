package game

// diagonals writes the in-bounds diagonal neighbors of cell i into buf.
func (b *Board) diagonals(i int, buf *[4]int) []int {
	n := 0
	x, y := i%b.size, i/b.size
	last := b.size - 1
	if x > 0 && y > 0 {
		buf[n] = i - b.size - 1
		n++
	}
	if x < last && y > 0 {
		buf[n] = i - b.size + 1
		n++
	}
	if x > 0 && y < last {
		buf[n] = i + b.size - 1
		n++
	}
	if x < last && y < last {
		buf[n] = i + b.size + 1
		n++
	}
	return buf[:n]
}

// IsEye reports whether the empty point p is an eye of color c: every
// orthogonal neighbor is c, and the diagonals pass a tolerance that depends on
// where p sits. In a corner the single diagonal must be c, on an edge neither
// diagonal may hold an opposing stone, and in the interior at most one may.
func (b *Board) IsEye(p Point, c Color) bool {
	i := b.index(b.checked(p))
	if b.grid[i] != None {
		return false
	}
	return b.isEye(i, c)
}

func (b *Board) isEye(i int, c Color) bool {
	var buf [4]int
	for _, n := range b.neighbors(i, &buf) {
		if b.grid[n] != c {
			return false
		}
	}

	diagonals := b.diagonals(i, &buf)
	opposing := 0
	for _, d := range diagonals {
		if b.grid[d] != None && b.grid[d] != c {
			opposing++
		}
	}

	switch len(diagonals) {
	case 1:
		return b.grid[diagonals[0]] == c
	case 2:
		return opposing == 0
	case 4:
		return opposing <= 1
	}
	return false
}

// CountEyes scans the whole board for eyes of color c.
func (b *Board) CountEyes(c Color) int {
	count := 0
	for i, cell := range b.grid {
		if cell == None && b.isEye(i, c) {
			count++
		}
	}
	return count
}
