package board

// Piece represents the contents of a board cell. Unlike a symmetric chess
// piece set, a piece here already implies which side it belongs to: an
// Attacker is always Black's, a Defender or King always White's. 2 bits.
type Piece uint8

const (
	Empty Piece = iota
	Attacker
	Defender
	King
)

// NumPieces is the size of the Zobrist piece axis: Attacker, Defender, King.
const NumPieces = 3

// zobristIndex returns the piece's index into the Zobrist piece-square table
// (B->0, W->1, K->2), per the pinned piece ordering.
func (p Piece) zobristIndex() int {
	switch p {
	case Attacker:
		return 0
	case Defender:
		return 1
	case King:
		return 2
	default:
		return -1
	}
}

// Color returns the side the piece belongs to. Panics if called on Empty.
func (p Piece) Color() Color {
	switch p {
	case Attacker:
		return Black
	case Defender, King:
		return White
	default:
		panic("board: Color of Empty piece")
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case Attacker:
		return "B"
	case Defender:
		return "W"
	case King:
		return "K"
	default:
		return "?"
	}
}
