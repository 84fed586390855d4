package gui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/hotseat/pkg/board"
	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
)

// canvas clips drawing to the board surface at (x, y) of size w×h.
type canvas struct {
	s          tcell.Screen
	x, y, w, h int
}

func (c canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.s.SetContent(c.x+x, c.y+y, r, nil, style)
}

// drawText places text at the specified coordinates with the provided style
func (c canvas) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		c.set(x, y, r, style)
		x++
	}
}

func (c canvas) fill(r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ' ', style)
		}
	}
}

// frame is everything drawn in one pass.
type frame struct {
	layout Layout
	theme  Theme
	names  config.Players
	snap   game.Snapshot
	cursor *board.Square
}

func (f frame) draw(c canvas) {
	f.drawStatus(c)
	f.drawBoard(c)
	f.drawLabels(c)
}

// drawStatus displays both scores, the side to move, the last move and the
// reset control above the board.
func (f frame) drawStatus(c canvas) {
	t := f.theme
	width := f.layout.Width()
	bar := tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg)
	c.fill(Rect{W: width, H: f.layout.StatusRows}, bar)

	half := (width - 1) / 2
	white := scoreLabel(f.names.White, f.snap.Scores.Of(board.White), half)
	black := scoreLabel(f.names.Black, f.snap.Scores.Of(board.Black), half)
	c.drawText(0, 0, bar, white)
	c.drawText(width-utf8.RuneCountInString(black), 0, bar, black)

	turn := fmt.Sprintf("Turn: %s", f.snap.Turn)
	c.drawText(0, 1, bar.Foreground(t.Turn).Bold(true), turn)

	reset := f.layout.ResetRect()
	c.drawText(reset.X, reset.Y, tcell.StyleDefault.Background(t.ResetBg).Foreground(t.ResetFg), resetLabel)

	if m := f.snap.LastMove; m != nil {
		last := fmt.Sprintf("Last: %s %s", m.Piece.Glyph(), m)
		if m.IsCapture() {
			last += fmt.Sprintf(" x%s +%d", m.Captured.Glyph(), m.Points)
		}
		c.drawText(0, 2, bar, last)
	}
}

// scoreLabel formats "name: score", shortening name so the label fits in
// width cells. The score itself is never cut.
func scoreLabel(name string, score, width int) string {
	suffix := fmt.Sprintf(": %d", score)
	room := width - utf8.RuneCountInString(suffix)
	if room < 0 {
		room = 0
	}
	if runes := []rune(name); len(runes) > room {
		name = string(runes[:room])
	}
	return name + suffix
}

// squareBg returns the theme's color for sq, taking highlights into account
func (f frame) squareBg(sq board.Square) tcell.Color {
	t := f.theme
	bg := t.SquareLight
	if (sq.Row+sq.Col)%2 == 1 {
		bg = t.SquareDark
	}
	if m := f.snap.LastMove; m != nil && (m.From == sq || m.To == sq) {
		bg = t.SquareLastMove
	}
	if f.snap.Selecting && f.snap.Selected == sq {
		bg = t.SquareSelected
	}
	if f.cursor != nil && *f.cursor == sq {
		bg = t.SquareCursor
	}
	return bg
}

// drawBoard draws every square and the piece standing on it, the glyph in
// the middle of the square.
func (f frame) drawBoard(c canvas) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			r := f.layout.SquareRect(sq)
			bg := tcell.StyleDefault.Background(f.squareBg(sq))
			c.fill(r, bg)

			p := f.snap.Board.At(sq)
			if p.IsEmpty() {
				continue
			}
			fg := f.theme.WhitePiece
			if p.Side == board.Black {
				fg = f.theme.BlackPiece
			}
			glyph, _ := utf8.DecodeRuneInString(p.Glyph())
			c.set(r.X+r.W/2, r.Y+r.H/2, glyph, bg.Foreground(fg))
		}
	}
}

// drawLabels displays ranks in the gutter and files under the board
func (f frame) drawLabels(c canvas) {
	style := tcell.StyleDefault.Foreground(f.theme.Label)
	for row := 0; row < board.Size; row++ {
		r := f.layout.SquareRect(board.Sq(row, 0))
		c.drawText(0, r.Y+r.H/2, style, board.RankLabel(row))
	}
	y := f.layout.StatusRows + board.Size*f.layout.SquareHeight
	for col := 0; col < board.Size; col++ {
		r := f.layout.SquareRect(board.Sq(0, col))
		c.drawText(r.X+r.W/2, y, style, board.FileLabel(col))
	}
}
