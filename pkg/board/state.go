package board

// HistoryLimit bounds the repetition history: plies beyond this count are
// silently dropped rather than tracked, per the pinned repetition rule.
const HistoryLimit = 512

// GameState is the mutable aggregate the rules kernel and search driver
// operate on: board, side to move, cached king square, running Zobrist hash
// and repetition history. Not thread-safe; the search driver clones it
// (Fork) before speculatively applying a move.
type GameState struct {
	Board  Board
	Side   Color
	KingSq Square
	Hash   ZobristHash

	history []ZobristHash
	seen    map[ZobristHash]struct{}
}

// NewInitialState returns the fixed Copenhagen starting position, attacker (Black) to move.
func NewInitialState(zt *ZobristTable) *GameState {
	b := InitialBoard()
	kingSq, _ := b.KingSquare()

	s := &GameState{
		Board:  b,
		Side:   Black,
		KingSq: kingSq,
	}
	s.Hash = zt.Hash(&s.Board, s.Side)
	s.pushHistory(s.Hash)
	return s
}

// Fork returns an independent copy of the state. Board, Side, KingSq and Hash are
// value-copied (Board is a fixed-size array); history is copied so mutating the
// fork (via ApplyMove) never affects the original.
func (s *GameState) Fork() *GameState {
	fork := &GameState{
		Board:  s.Board,
		Side:   s.Side,
		KingSq: s.KingSq,
		Hash:   s.Hash,
	}
	fork.history = append([]ZobristHash(nil), s.history...)
	fork.seen = make(map[ZobristHash]struct{}, len(s.seen))
	for h := range s.seen {
		fork.seen[h] = struct{}{}
	}
	return fork
}

// HasOccurred reports whether the given hash already appears in the repetition history.
func (s *GameState) HasOccurred(h ZobristHash) bool {
	_, ok := s.seen[h]
	return ok
}

func (s *GameState) pushHistory(h ZobristHash) {
	if len(s.history) >= HistoryLimit {
		return // silently dropped past the cap
	}
	if s.seen == nil {
		s.seen = make(map[ZobristHash]struct{})
	}
	s.history = append(s.history, h)
	s.seen[h] = struct{}{}
}

// History returns the recorded hash sequence, history[0] the starting position.
func (s *GameState) History() []ZobristHash {
	return s.history
}

func (s *GameState) String() string {
	return s.Board.Render() + "\nside: " + s.Side.String()
}
