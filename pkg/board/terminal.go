package board

// MaxInsufficientAttackers and MaxInsufficientDefenders pin the (intentionally
// imprecise, per spec.md §9) "insufficient material" draw threshold.
const (
	MaxInsufficientAttackers = 2
	MaxInsufficientDefenders = 1
)

// CheckGameOver returns the terminal result for state, or None if the game
// continues. It generates the side to move's legal moves itself for the "no
// legal move loses" case (Rule 9); callers that have already computed them
// should use CheckGameOverWithMoves, which is cheaper than generating moves
// twice.
func CheckGameOver(zt *ZobristTable, s *GameState) Result {
	if r := checkKing(s); r != None {
		return r
	}

	var buf MoveList
	LegalMoves(zt, s, &buf)
	if r := checkNoMoves(s, buf.Len()); r != None {
		return r
	}
	return checkInsufficientMaterial(s)
}

// CheckGameOverWithMoves is CheckGameOver for a caller that already knows the
// side to move's legal move count (avoids a redundant LegalMoves call).
func CheckGameOverWithMoves(s *GameState, legalMoveCount int) Result {
	if r := checkKing(s); r != None {
		return r
	}
	if r := checkNoMoves(s, legalMoveCount); r != None {
		return r
	}
	return checkInsufficientMaterial(s)
}

// checkKing resolves the king-escape and king-capture terminal cases: the
// king reaching a corner wins White, the king no longer on the board wins
// Black.
func checkKing(s *GameState) Result {
	sq, ok := s.Board.KingSquare()
	if !ok {
		return BlackWin
	}
	if sq.IsCorner() {
		return WhiteWin
	}
	return None
}

func checkInsufficientMaterial(s *GameState) Result {
	attackers, defenders := s.Board.Count()
	if attackers <= MaxInsufficientAttackers && defenders <= MaxInsufficientDefenders {
		return DrawResult
	}
	return None
}

func checkNoMoves(s *GameState, legalMoveCount int) Result {
	if legalMoveCount > 0 {
		return None
	}
	// Rule 9: the side to move with no legal move loses; the opponent wins.
	if s.Side == Black {
		return WhiteWin
	}
	return BlackWin
}
