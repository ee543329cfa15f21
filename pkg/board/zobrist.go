package board

import "math/rand"

// ZobristHash is a 64-bit position fingerprint: XOR of per-(square, piece)
// constants for every occupied cell, folded with a side-to-move constant.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is an immutable, seed-derived table of pseudo-random constants.
type ZobristTable struct {
	seed   int64
	pieces [NumSquares][NumPieces]ZobristHash // indexed by Piece.zobristIndex()
	black  ZobristHash                        // XORed in iff Black is to move
}

// NewZobristTable builds the table deterministically from the given seed.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	ret := &ZobristTable{seed: seed}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		for i := 0; i < int(NumPieces); i++ {
			ret.pieces[sq][i] = ZobristHash(r.Uint64())
		}
	}
	ret.black = ZobristHash(r.Uint64())
	return ret
}

// Seed returns the seed the table was constructed from.
func (z *ZobristTable) Seed() int64 {
	return z.seed
}

func (z *ZobristTable) pieceHash(sq Square, p Piece) ZobristHash {
	return z.pieces[sq][p.zobristIndex()]
}

// Hash computes the hash of the given board from scratch.
func (z *ZobristTable) Hash(b *Board, turn Color) ZobristHash {
	var hash ZobristHash
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if p := b.At(sq); p != Empty {
			hash ^= z.pieceHash(sq, p)
		}
	}
	if turn == Black {
		hash ^= z.black
	}
	return hash
}

// NextHash computes the hash of the successor of state under the (legal) move
// m, WITHOUT mutating state. It starts from state.Hash, XORs out the mover at
// the source, XORs it in at the destination, flips the side-to-move fold, and
// XORs out any victims the move would capture.
//
// The ghost square: by the time captures are checked, the mover has already
// left m.From. If a capture's anvil square is m.From, it must be treated as
// empty (the "static" hostility variant: corner-or-throne only) regardless of
// what state.Board currently shows there.
func NextHash(z *ZobristTable, state *GameState, m Move) ZobristHash {
	hash := state.Hash

	mover := state.Board.At(m.From)
	hash ^= z.pieceHash(m.From, mover)
	hash ^= z.pieceHash(m.To, mover)
	hash ^= z.black

	for _, victim := range capturedVictims(&state.Board, mover, m.From, m.To) {
		hash ^= z.pieceHash(victim.sq, victim.piece)
	}
	if capturesKing(&state.Board, mover, m.From, m.To, state.KingSq) {
		hash ^= z.pieceHash(state.KingSq, King)
	}

	return hash
}
