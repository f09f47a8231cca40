package game

// Groups are never stored. They are flood filled on demand with an explicit
// stack and a visited slice sized to the board, so no recursion depth grows
// with the group.

// group returns the cells of the group containing cell i, or nil if i is empty.
func (b *Board) group(i int) []int {
	color := b.grid[i]
	if color == None {
		return nil
	}

	visited := make([]bool, len(b.grid))
	stack := []int{i}
	visited[i] = true
	var cells []int
	var buf [4]int
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, cur)
		for _, n := range b.neighbors(cur, &buf) {
			if !visited[n] && b.grid[n] == color {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return cells
}

func (b *Board) hasLiberty(group []int) bool {
	var buf [4]int
	for _, i := range group {
		for _, n := range b.neighbors(i, &buf) {
			if b.grid[n] == None {
				return true
			}
		}
	}
	return false
}

// hasLibertyExcept reports whether the group at cell i keeps a liberty once
// cell except is filled. It stops at the first liberty found.
func (b *Board) hasLibertyExcept(i, except int) bool {
	color := b.grid[i]
	if color == None {
		return false
	}

	visited := make([]bool, len(b.grid))
	stack := []int{i}
	visited[i] = true
	var buf [4]int
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.neighbors(cur, &buf) {
			switch {
			case b.grid[n] == None:
				if n != except {
					return true
				}
			case b.grid[n] == color && !visited[n]:
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// liberties counts the distinct empty cells next to a group.
func (b *Board) liberties(group []int) int {
	seen := make([]bool, len(b.grid))
	count := 0
	var buf [4]int
	for _, i := range group {
		for _, n := range b.neighbors(i, &buf) {
			if b.grid[n] == None && !seen[n] {
				seen[n] = true
				count++
			}
		}
	}
	return count
}

// Group returns the points of the group containing p, nil if p is empty.
func (b *Board) Group(p Point) []Point {
	cells := b.group(b.index(b.checked(p)))
	if cells == nil {
		return nil
	}
	points := make([]Point, len(cells))
	for k, i := range cells {
		points[k] = b.point(i)
	}
	return points
}

// Liberties counts the liberties of the group containing p, 0 if p is empty.
func (b *Board) Liberties(p Point) int {
	i := b.index(b.checked(p))
	if b.grid[i] == None {
		return 0
	}
	return b.liberties(b.group(i))
}

// Atari counts the groups of color c that are down to a single liberty.
func (b *Board) Atari(c Color) int {
	visited := make([]bool, len(b.grid))
	count := 0
	for i, cell := range b.grid {
		if cell != c || visited[i] {
			continue
		}
		group := b.group(i)
		for _, g := range group {
			visited[g] = true
		}
		if b.liberties(group) == 1 {
			count++
		}
	}
	return count
}

func (b *Board) checked(p Point) Point {
	if !b.InBounds(p) {
		panic("point " + p.String() + " outside board")
	}
	return p
}
