package search

import "github.com/sigurdsson/brandub/pkg/board"

// Value is a search outcome from the perspective of the player about to
// move in some state. The repository's unusual convention (spec.md §9):
// WIN=+1, LOSS=0, DRAW=-1 -- draw sorts below loss, which keeps wins stored
// unsigned-like while still negatable for perspective flips.
type Value int32

const (
	Loss Value = 0
	Win  Value = 1
	Draw Value = -1
)

// negate flips perspective: a child's value to its mover becomes, from the
// parent's point of view, its negation.
func (v Value) negate() Value {
	return -v
}

// valueOf converts a terminal board.Result into a Value from the
// perspective of side (the player about to move in the terminal state, i.e.
// the side whose turn it would have been had the game not ended).
func valueOf(r board.Result, side board.Color) Value {
	winner, ok := r.Winner()
	switch {
	case !ok:
		return Draw
	case winner == side:
		return Win
	default:
		return Loss
	}
}
