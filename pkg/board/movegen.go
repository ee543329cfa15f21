package board

// moveDirections are the four cardinal scan directions for rook-like movement.
var moveDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// LegalMoves writes every legal move for the side to move into buf (which is
// cleared first), scanning outward from each of the mover's pieces in the
// four cardinal directions until a non-empty cell or the board edge is hit.
// Filters out restricted destinations (corners/throne, unless the mover is
// the king) and moves whose successor would repeat a prior position (the
// pinned repetition rule, spec.md §9 interpretation (b)).
func LegalMoves(zt *ZobristTable, s *GameState, buf *MoveList) {
	buf.Reset()

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		p := s.Board.At(sq)
		if p == Empty || !belongsTo(p, s.Side) {
			continue
		}

		for _, d := range moveDirections {
			r, c := sq.Row(), sq.Col()
			for {
				r += d[0]
				c += d[1]
				if !onBoard(r, c) {
					break
				}
				dst := NewSquare(r, c)
				if s.Board.At(dst) != Empty {
					break // blocked: this and farther squares on this ray are unreachable
				}

				m := Move{From: sq, To: dst}
				if dst.IsRestricted() && p != King {
					continue
				}
				if s.HasOccurred(NextHash(zt, s, m)) {
					continue
				}
				buf.Add(m)
			}
		}
	}
}

// belongsTo reports whether piece p is controlled by side c: White moves
// either Defender or King, Black moves only Attacker.
func belongsTo(p Piece, c Color) bool {
	if c == Black {
		return p == Attacker
	}
	return p == Defender || p == King
}
