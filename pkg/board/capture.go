package board

// neighborDeltas are the four orthogonal directions.
var neighborDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// capturedVictim names a non-king piece removed by a capture.
type capturedVictim struct {
	sq    Square
	piece Piece
}

// virtualAt returns the content of sq as it would be AFTER the mover has
// moved from `from` to `to`, without mutating the board. This is the
// "ghost square" view: `from` reads as Empty (the mover has already left),
// `to` reads as `mover` (even when captures are resolved before the board
// is physically mutated, so the live board still shows `to` empty).
func virtualAt(b *Board, sq, from, to Square, mover Piece) Piece {
	switch sq {
	case to:
		return mover
	case from:
		return Empty
	default:
		return b.At(sq)
	}
}

// capturedVictims returns every non-king enemy piece orthogonally adjacent to
// the mover's destination `to` that is captured by the move, per the
// sandwich-capture rule. Evaluated against the virtual post-move board
// without mutating `b`.
func capturedVictims(b *Board, mover Piece, from, to Square) []capturedVictim {
	var victims []capturedVictim

	moverSide := mover.Color()
	for _, d := range neighborDeltas {
		nr, nc := to.Row()+d[0], to.Col()+d[1]
		if !onBoard(nr, nc) {
			continue
		}
		n := NewSquare(nr, nc)
		victim := virtualAt(b, n, from, to, mover)
		if victim == Empty || victim == King || victim.Color() == moverSide {
			continue // not an enemy non-king piece
		}

		br, bc := n.Row()+d[0], n.Col()+d[1]
		if !onBoard(br, bc) {
			continue
		}
		anvil := NewSquare(br, bc)
		if isHostileTo(b, anvil, victim.Color(), from, to, mover) {
			victims = append(victims, capturedVictim{sq: n, piece: victim})
		}
	}
	return victims
}

// isHostileTo reports whether `at` would act as the anvil in a sandwich
// capture against a piece of color `victim`, evaluated against the virtual
// post-move board (see virtualAt): an enemy of the victim (including the
// king), a corner, or the throne (hostile to black always; to white only
// when empty).
func isHostileTo(b *Board, at Square, victim Color, from, to Square, mover Piece) bool {
	if at.IsCorner() {
		return true
	}
	content := virtualAt(b, at, from, to, mover)
	if at.IsThrone() {
		if victim == Black {
			return true // hostile to black always
		}
		return content == Empty // hostile to white only if the throne is empty
	}
	if content == Empty {
		return false
	}
	return content.Color() != victim // enemy of the victim, including the king
}

// capturesKing reports whether the move captures the opposing king.
func capturesKing(b *Board, mover Piece, from, to, kingSq Square) bool {
	if mover == King || mover.Color() != Black {
		return false // only the attackers can capture the king
	}
	if !isOrthogonallyAdjacent(to, kingSq) {
		return false
	}
	return isKingCaptured(b, kingSq, from, to, mover)
}

func isOrthogonallyAdjacent(a, c Square) bool {
	dr := a.Row() - c.Row()
	dc := a.Col() - c.Col()
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// isKingCaptured applies the three-case king-capture test against the
// virtual post-move board.
func isKingCaptured(b *Board, kingSq, from, to Square, mover Piece) bool {
	switch {
	case kingSq.IsThrone():
		for _, d := range neighborDeltas {
			nr, nc := kingSq.Row()+d[0], kingSq.Col()+d[1]
			if !onBoard(nr, nc) || virtualAt(b, NewSquare(nr, nc), from, to, mover) != Attacker {
				return false
			}
		}
		return true

	case isAdjacentToThrone(kingSq):
		hostile := 0
		for _, d := range neighborDeltas {
			nr, nc := kingSq.Row()+d[0], kingSq.Col()+d[1]
			if !onBoard(nr, nc) {
				continue
			}
			n := NewSquare(nr, nc)
			if n.IsThrone() || isHostileTo(b, n, White, from, to, mover) {
				hostile++
			}
		}
		return hostile == 4

	default:
		// Either axis (N-S or E-W) with both neighbors hostile captures the king.
		// Corners count as hostile; off-board does not.
		axes := [2][2][2]int{
			{{-1, 0}, {1, 0}},
			{{0, -1}, {0, 1}},
		}
		for _, axis := range axes {
			hostile := true
			for _, d := range axis {
				nr, nc := kingSq.Row()+d[0], kingSq.Col()+d[1]
				if !onBoard(nr, nc) {
					hostile = false
					break
				}
				n := NewSquare(nr, nc)
				if !(n.IsCorner() || isHostileTo(b, n, White, from, to, mover)) {
					hostile = false
					break
				}
			}
			if hostile {
				return true
			}
		}
		return false
	}
}

func isAdjacentToThrone(sq Square) bool {
	return isOrthogonallyAdjacent(sq, Throne)
}
