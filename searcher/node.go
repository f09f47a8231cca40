package searcher

import (
	"math"

	"jungo/game"
)

// node is one position in the search tree. Nodes live in a tree arena and
// refer to each other by index.
type node struct {
	move     game.Point // Move that led here from the parent
	toMove   game.Color
	visits   int
	rewards  float64 // Wins for toMove.Opposite(), the player who moved into this node
	hash     uint64
	children []int
	untried  []game.Point
}

type tree struct {
	nodes []node
}

func newTree(board *game.Board, color game.Color, moves []game.Point) *tree {
	return &tree{nodes: []node{{
		toMove:  color,
		hash:    board.Hash(),
		untried: moves,
	}}}
}

// add appends a child of parent and returns its index.
func (t *tree) add(parent int, child node) int {
	t.nodes = append(t.nodes, child)
	i := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, i)
	return i
}

// pop removes a random untried move of node i.
func (t *tree) pop(i int, pick func(n int) int) game.Point {
	untried := t.nodes[i].untried
	k := pick(len(untried))
	move := untried[k]
	untried[k] = untried[len(untried)-1]
	t.nodes[i].untried = untried[:len(untried)-1]
	return move
}

// selectChild returns the child of parent with the highest UCT score, the
// first one on ties.
func (t *tree) selectChild(parent int, exploration float64) int {
	lnN := math.Log(float64(t.nodes[parent].visits))
	best, bestScore := -1, math.Inf(-1)
	for _, i := range t.nodes[parent].children {
		child := &t.nodes[i]
		if score := uct(child.rewards, child.visits, exploration, lnN); best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// backup credits every node on path with the playout result, seen from the
// player who moved into it.
func (t *tree) backup(path []int, winner game.Color) {
	reward := rewarder(winner)
	for _, i := range path {
		n := &t.nodes[i]
		n.visits++
		n.rewards += reward(n.toMove.Opposite())
	}
}

// mostVisited returns the root child with the most visits, the first one on
// ties, or -1 if the root has no children.
func (t *tree) mostVisited() int {
	best := -1
	for _, i := range t.nodes[0].children {
		if best < 0 || t.nodes[i].visits > t.nodes[best].visits {
			best = i
		}
	}
	return best
}
