package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Move represents a not-necessarily-legal orthogonal move of a single piece
// from one square to another. 16 bits.
type Move struct {
	From, To Square
}

// NewMove builds a move from raw (row, col) coordinates. Does not validate range.
func NewMove(sr, sc, er, ec int) Move {
	return Move{From: NewSquare(sr, sc), To: NewSquare(er, ec)}
}

// ParseMove parses a move in the "sr sc er ec" whitespace-separated integer
// format, each coordinate in [0,Dim).
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Move{}, fmt.Errorf("invalid move %q: expected 4 integers, got %d fields", line, len(fields))
	}

	var coords [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, fmt.Errorf("invalid move %q: %w", line, err)
		}
		if v < 0 || v >= Dim {
			return Move{}, fmt.Errorf("invalid move %q: coordinate %d out of range [0,%d)", line, v, Dim)
		}
		coords[i] = v
	}
	return NewMove(coords[0], coords[1], coords[2], coords[3]), nil
}

// Equals reports whether two moves denote the same source and destination.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d %d %d", m.From.Row(), m.From.Col(), m.To.Row(), m.To.Col())
}
