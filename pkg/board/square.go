package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// Size is the number of rows and columns of the grid.
const Size = 8

// Square is a grid coordinate. Row 0 is black's back rank at the top of the
// screen, column 0 is the a-file.
type Square struct {
	Row, Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// Valid reports whether both coordinates are inside the grid.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// chessSquare converts to the notnil/chess square index, a1 is 0.
func (s Square) chessSquare() chess.Square {
	rank := Size - 1 - s.Row
	return chess.Square(rank*Size + s.Col)
}

// String returns the algebraic name of the square ("e2").
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return s.chessSquare().String()
}

// ParseSquare parses an algebraic square name.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return Square{Row: int('8' - name[1]), Col: int(name[0] - 'a')}, nil
}

// RankLabel and FileLabel name a row and a column for board labels.
func RankLabel(row int) string { return chess.Rank(Size - 1 - row).String() }
func FileLabel(col int) string { return chess.File(col).String() }
