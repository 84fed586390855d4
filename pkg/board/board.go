// Package board holds the grid of piece placements and the piece vocabulary.
package board

import (
	"fmt"
	"strings"
)

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid, indexed [row][col]. Every cell holds a Piece.
type Board [Size][Size]Piece

// Standard returns the starting layout.
func Standard() Board {
	var b Board
	for col, k := range backRank {
		b[0][col] = B(k)
		b[1][col] = B(Pawn)
		b[6][col] = W(Pawn)
		b[7][col] = W(k)
	}
	return b
}

// At returns the occupant of sq. sq must be valid.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set places p on sq. sq must be valid.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Count returns how many squares hold p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == p {
				n++
			}
		}
	}
	return n
}

// Placement encodes the board as the piece placement field of a FEN string,
// starting with row 0.
func (b *Board) Placement() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('/')
		}
		gap := 0
		for _, p := range row {
			if p.IsEmpty() {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteByte(byte('0' + gap))
				gap = 0
			}
			c := p.Kind.Letter()
			if p.Side == White {
				c -= 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		if gap > 0 {
			sb.WriteByte(byte('0' + gap))
		}
	}
	return sb.String()
}

// ParsePlacement decodes the piece placement field of a FEN string.
func ParsePlacement(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("invalid placement: expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		col := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			if col >= Size {
				return b, fmt.Errorf("invalid placement: too many pieces in row %d", r)
			}
			side := Black
			if c >= 'A' && c <= 'Z' {
				side = White
				c += 'a' - 'A'
			}
			k, ok := kindFromLetter(c)
			if !ok {
				return b, fmt.Errorf("invalid placement: unknown piece %q in row %d", row[i], r)
			}
			b[r][col] = Piece{Side: side, Kind: k}
			col++
		}
		if col != Size {
			return b, fmt.Errorf("invalid placement: row %d has %d columns", r, col)
		}
	}
	return b, nil
}
