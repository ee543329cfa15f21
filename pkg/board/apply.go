package board

// ApplyMove mutates state by applying the (assumed legal) move m: it moves
// the piece, resolves captures (including a possible king capture), flips
// the side to move, updates the cached king square, and appends the new hash
// to the repetition history. The new hash is computed via NextHash before
// any mutation, independently of the board-mutation path below, so that the
// two must agree for the state to remain internally consistent (see
// NextHash's hash-fidelity property).
func ApplyMove(zt *ZobristTable, s *GameState, m Move) {
	next := NextHash(zt, s, m)

	mover := s.Board.At(m.From)

	for _, v := range capturedVictims(&s.Board, mover, m.From, m.To) {
		s.Board.Set(v.sq, Empty)
	}
	kingCaptured := capturesKing(&s.Board, mover, m.From, m.To, s.KingSq)

	s.Board.Set(m.From, Empty)
	s.Board.Set(m.To, mover)

	if mover == King {
		s.KingSq = m.To
	} else if kingCaptured {
		s.Board.Set(s.KingSq, Empty)
		s.KingSq = NumSquares // sentinel: no longer on the board
	}

	s.Side = s.Side.Opponent()
	s.Hash = next
	s.pushHistory(s.Hash)
}
