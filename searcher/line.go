package searcher

import "jungo/game"

// line holds the position hashes along one path of a search tree, newest
// last. Simple Ko inside a search is checked against it rather than the game
// history, since sibling branches reach different positions.
type line []uint64

// allows reports whether a position with hash h may follow the line, i.e.
// does not recreate the position two plies back.
func (l line) allows(h uint64) bool {
	n := len(l)
	return n < 2 || l[n-2] != h
}

// withoutKo drops the moves for color that would recreate the position two
// plies back in history, which ends with the hash of board.
func withoutKo(board *game.Board, color game.Color, moves []game.Point, history line) []game.Point {
	if len(history) < 2 {
		return moves
	}
	kept := make([]game.Point, 0, len(moves))
	for _, p := range moves {
		child := board.Clone()
		_ = child.Place(p, color)
		if history.allows(child.Hash()) {
			kept = append(kept, p)
		}
	}
	return kept
}
