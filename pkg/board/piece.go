package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// Side is one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Kind is the type of a piece. NoKind marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every real piece kind.
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Letter is the lower case letter used in piece codes.
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return 0
	}
}

// Value is the material credited for capturing a piece of this kind.
// Kings are worth nothing since the game never ends on their capture.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

func kindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return NoKind, false
}

// Piece is the occupant of a square. The zero value is Empty.
type Piece struct {
	Side Side
	Kind Kind
}

// Empty is the occupant of an unoccupied square.
var Empty = Piece{}

// W and B build pieces of the given kind.
func W(k Kind) Piece { return Piece{Side: White, Kind: k} }
func B(k Kind) Piece { return Piece{Side: Black, Kind: k} }

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Value returns the material value of the piece, zero for Empty.
func (p Piece) Value() int { return p.Kind.Value() }

// Code returns the two letter code of the piece ("wr", "bn") or "" for Empty.
func (p Piece) Code() string {
	if p.IsEmpty() {
		return ""
	}
	side := byte('w')
	if p.Side == Black {
		side = 'b'
	}
	return string([]byte{side, p.Kind.Letter()})
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// ParseCode is the inverse of Code.
func ParseCode(code string) (Piece, error) {
	if code == "" {
		return Empty, nil
	}
	if len(code) != 2 {
		return Empty, fmt.Errorf("invalid piece code %q", code)
	}
	var side Side
	switch code[0] {
	case 'w':
		side = White
	case 'b':
		side = Black
	default:
		return Empty, fmt.Errorf("invalid piece code %q: unknown side", code)
	}
	kind, ok := kindFromLetter(code[1])
	if !ok {
		return Empty, fmt.Errorf("invalid piece code %q: unknown kind", code)
	}
	return Piece{Side: side, Kind: kind}, nil
}

var chessPieces = map[Piece]chess.Piece{
	W(King): chess.WhiteKing, W(Queen): chess.WhiteQueen, W(Rook): chess.WhiteRook,
	W(Bishop): chess.WhiteBishop, W(Knight): chess.WhiteKnight, W(Pawn): chess.WhitePawn,
	B(King): chess.BlackKing, B(Queen): chess.BlackQueen, B(Rook): chess.BlackRook,
	B(Bishop): chess.BlackBishop, B(Knight): chess.BlackKnight, B(Pawn): chess.BlackPawn,
}

// Glyph returns the unicode chess symbol of the piece, " " for Empty.
func (p Piece) Glyph() string {
	cp, ok := chessPieces[p]
	if !ok {
		return " "
	}
	return cp.String()
}
