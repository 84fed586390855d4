// Package textboard prints a snapshot of a game as coloured text, for
// output that is not an interactive terminal.
package textboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/qnkhuat/hotseat/pkg/board"
	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
)

var (
	lightSquare    = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare     = color.New(color.BgGreen, color.FgBlack)
	selectedSquare = color.New(color.BgHiYellow, color.FgBlack)
	lastMoveSquare = color.New(color.BgYellow, color.FgBlack)
	label          = color.New(color.Faint)
	turn           = color.New(color.Bold)
)

func squareColor(snap game.Snapshot, sq board.Square) *color.Color {
	if snap.Selecting && snap.Selected == sq {
		return selectedSquare
	}
	if m := snap.LastMove; m != nil && (m.From == sq || m.To == sq) {
		return lastMoveSquare
	}
	if (sq.Row+sq.Col)%2 == 1 {
		return darkSquare
	}
	return lightSquare
}

// Render writes the board with black's back rank on top, followed by the
// scores, the side to move and the last move if there is one.
func Render(w io.Writer, snap game.Snapshot, names config.Players) error {
	var sb strings.Builder
	for row := 0; row < board.Size; row++ {
		label.Fprint(&sb, board.RankLabel(row))
		sb.WriteByte(' ')
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			glyph := " "
			if p := snap.Board.At(sq); !p.IsEmpty() {
				glyph = p.Glyph()
			}
			squareColor(snap, sq).Fprint(&sb, " "+glyph+" ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < board.Size; col++ {
		label.Fprint(&sb, " "+board.FileLabel(col)+" ")
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%s: %d  %s: %d\n", names.White, snap.Scores.Of(board.White), names.Black, snap.Scores.Of(board.Black))
	turn.Fprintf(&sb, "Turn: %s", snap.Turn)
	sb.WriteByte('\n')
	if m := snap.LastMove; m != nil {
		fmt.Fprintf(&sb, "Last: %s %s", m.Piece.Glyph(), m)
		if m.IsCapture() {
			fmt.Fprintf(&sb, " x%s +%d", m.Captured.Glyph(), m.Points)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
