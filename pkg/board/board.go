// Package board contains the 7x7 Copenhagen Hnefatafl board representation,
// Zobrist hashing, move legality, capture resolution and terminal detection.
package board

import (
	"fmt"
	"strings"
)

// Board is the 7x7 grid of cells, row-major, row 0 at the top.
type Board [NumSquares]Piece

// InitialBoard returns the fixed Copenhagen starting layout, attacker to move.
func InitialBoard() Board {
	var b Board

	layout := [Dim][Dim]byte{
		{'.', '.', '.', 'B', '.', '.', '.'},
		{'.', '.', '.', 'B', '.', '.', '.'},
		{'.', '.', '.', 'W', '.', '.', '.'},
		{'B', 'B', 'W', 'K', 'W', 'B', 'B'},
		{'.', '.', '.', 'W', '.', '.', '.'},
		{'.', '.', '.', 'B', '.', '.', '.'},
		{'.', '.', '.', 'B', '.', '.', '.'},
	}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			b[NewSquare(r, c)] = pieceFromRune(layout[r][c])
		}
	}
	return b
}

func pieceFromRune(r byte) Piece {
	switch r {
	case 'B':
		return Attacker
	case 'W':
		return Defender
	case 'K':
		return King
	default:
		return Empty
	}
}

// At returns the piece occupying the given square.
func (b *Board) At(sq Square) Piece {
	return b[sq]
}

// Set places (or clears, with Empty) a piece on the given square.
func (b *Board) Set(sq Square, p Piece) {
	b[sq] = p
}

// KingSquare scans the board for the king. The second return is false if absent.
func (b *Board) KingSquare() (Square, bool) {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if b[sq] == King {
			return sq, true
		}
	}
	return 0, false
}

// Count returns the number of attackers and defenders (excluding the king) on the board.
func (b *Board) Count() (attackers, defenders int) {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		switch b[sq] {
		case Attacker:
			attackers++
		case Defender:
			defenders++
		}
	}
	return attackers, defenders
}

// Render writes the board as "<row index> <cell> <cell> ..." rows followed by
// a trailing column legend, matching the external board rendering format.
func (b *Board) Render() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		sb.WriteString(fmt.Sprintf("%d", r))
		for c := 0; c < Dim; c++ {
			sb.WriteString(" ")
			sb.WriteString(b.At(NewSquare(r, c)).String())
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for c := 0; c < Dim; c++ {
		sb.WriteString(fmt.Sprintf(" %d", c))
	}
	return sb.String()
}
