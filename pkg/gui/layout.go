package gui

import (
	"github.com/qnkhuat/hotseat/pkg/board"
)

const (
	statusRows = 3
	gutter     = 2
	resetLabel = "[ Reset ]"
)

// Layout places the status bar, rank labels and squares on the board
// surface. Coordinates are terminal cells relative to the surface origin.
type Layout struct {
	StatusRows   int
	Gutter       int
	SquareWidth  int
	SquareHeight int
}

// NewLayout returns a layout with the standard status bar and gutter.
func NewLayout(squareWidth, squareHeight int) Layout {
	return Layout{
		StatusRows:   statusRows,
		Gutter:       gutter,
		SquareWidth:  squareWidth,
		SquareHeight: squareHeight,
	}
}

// Width and Height are the size of the whole surface, including the file
// label row under the board.
func (l Layout) Width() int  { return l.Gutter + board.Size*l.SquareWidth }
func (l Layout) Height() int { return l.StatusRows + board.Size*l.SquareHeight + 1 }

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ResetRect is the reset control, right aligned on the second status row.
func (l Layout) ResetRect() Rect {
	w := len(resetLabel)
	return Rect{X: l.Width() - w, Y: 1, W: w, H: 1}
}

// SquareRect is the area covered by sq.
func (l Layout) SquareRect(sq board.Square) Rect {
	return Rect{
		X: l.Gutter + sq.Col*l.SquareWidth,
		Y: l.StatusRows + sq.Row*l.SquareHeight,
		W: l.SquareWidth,
		H: l.SquareHeight,
	}
}

type HitKind int

const (
	HitNone HitKind = iota
	HitSquare
	HitReset
)

// Hit is what a pointer position lands on.
type Hit struct {
	Kind   HitKind
	Square board.Square
}

// Hit maps a pointer position to the reset control or a grid cell. The
// status bar, the gutter and anything past the board map to HitNone, so a
// HitSquare always carries a valid square.
func (l Layout) Hit(x, y int) Hit {
	if l.ResetRect().Contains(x, y) {
		return Hit{Kind: HitReset}
	}
	if y < l.StatusRows {
		return Hit{}
	}
	bx, by := x-l.Gutter, y-l.StatusRows
	if bx < 0 || by < 0 {
		return Hit{}
	}
	sq := board.Sq(by/l.SquareHeight, bx/l.SquareWidth)
	if !sq.Valid() {
		return Hit{}
	}
	return Hit{Kind: HitSquare, Square: sq}
}
