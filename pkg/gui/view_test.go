package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/hotseat/pkg/board"
	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
)

func newTestView(t *testing.T) (*BoardView, *game.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)

	layout := NewLayout(6, 3)
	screen.SetSize(layout.Width(), layout.Height())

	session := game.NewSession()
	view := NewBoardView(session, layout, ThemeBasic, config.Players{White: "Alice", Black: "Bob"})
	view.SetRect(0, 0, layout.Width(), layout.Height())
	return view, session, screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func glyphAt(s tcell.Screen, l Layout, sq board.Square) rune {
	r := l.SquareRect(sq)
	c, _, _, _ := s.GetContent(r.X+r.W/2, r.Y+r.H/2)
	return c
}

func bgAt(s tcell.Screen, l Layout, sq board.Square) tcell.Color {
	r := l.SquareRect(sq)
	_, _, style, _ := s.GetContent(r.X, r.Y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestBoardViewDrawsStartingPosition(t *testing.T) {
	view, _, screen := newTestView(t)
	view.Draw(screen)

	status := rowText(screen, 0)
	if !strings.HasPrefix(status, "Alice: 0") || !strings.HasSuffix(status, "Bob: 0") {
		t.Errorf("score row = %q", status)
	}
	turnRow := rowText(screen, 1)
	if !strings.HasPrefix(turnRow, "Turn: White") || !strings.HasSuffix(turnRow, resetLabel) {
		t.Errorf("turn row = %q", turnRow)
	}

	l := view.layout
	wantGlyphs := map[board.Square]rune{
		board.Sq(7, 0): '♖',
		board.Sq(7, 4): '♔',
		board.Sq(0, 3): '♛',
		board.Sq(1, 6): '♟',
		board.Sq(4, 4): ' ',
	}
	for sq, want := range wantGlyphs {
		if got := glyphAt(screen, l, sq); got != want {
			t.Errorf("glyph at %v = %q; want %q", sq, got, want)
		}
	}

	if got := bgAt(screen, l, board.Sq(0, 0)); got != ThemeBasic.SquareLight {
		t.Errorf("a8 background = %v; want light", got)
	}
	if got := bgAt(screen, l, board.Sq(0, 1)); got != ThemeBasic.SquareDark {
		t.Errorf("b8 background = %v; want dark", got)
	}

	labels := rowText(screen, l.Height()-1)
	if strings.Join(strings.Fields(labels), "") != "abcdefgh" {
		t.Errorf("file labels = %q", labels)
	}
}

func TestBoardViewPress(t *testing.T) {
	view, session, screen := newTestView(t)
	l := view.layout
	at := func(sq board.Square) (int, int) {
		r := l.SquareRect(sq)
		return r.X + 1, r.Y + 1
	}

	if hit := view.Press(10, 0); hit.Kind != HitNone {
		t.Errorf("status bar press = %+v; want none", hit)
	}

	view.Press(at(board.Sq(6, 4)))
	view.Draw(screen)
	if got := bgAt(screen, l, board.Sq(6, 4)); got != ThemeBasic.SquareSelected {
		t.Errorf("selected square background = %v; want %v", got, ThemeBasic.SquareSelected)
	}

	view.Press(at(board.Sq(4, 4)))
	snap := session.Snapshot()
	if snap.Turn != board.Black || snap.Board.At(board.Sq(4, 4)) != board.W(board.Pawn) {
		t.Fatalf("after e2e4: turn %v, e4 %v", snap.Turn, snap.Board.At(board.Sq(4, 4)))
	}
	view.Draw(screen)
	if row := rowText(screen, 1); !strings.HasPrefix(row, "Turn: Black") {
		t.Errorf("turn row = %q", row)
	}
	if row := rowText(screen, 2); !strings.Contains(row, "e2e4") {
		t.Errorf("last move row = %q", row)
	}
	if got := bgAt(screen, l, board.Sq(4, 4)); got != ThemeBasic.SquareLastMove {
		t.Errorf("last move background = %v; want %v", got, ThemeBasic.SquareLastMove)
	}

	reset := l.ResetRect()
	if hit := view.Press(reset.X+2, reset.Y); hit.Kind != HitReset {
		t.Fatalf("reset press = %+v", hit)
	}
	if snap := session.Snapshot(); snap.Turn != board.White || snap.LastMove != nil {
		t.Errorf("reset did not restore the initial state: %+v", snap)
	}
}

func TestBoardViewMouse(t *testing.T) {
	view, session, _ := newTestView(t)
	handler := view.MouseHandler()
	noFocus := func(tview.Primitive) {}
	click := func(action tview.MouseAction, sq board.Square) bool {
		r := view.layout.SquareRect(sq)
		ev := tcell.NewEventMouse(r.X, r.Y, tcell.Button1, tcell.ModNone)
		consumed, _ := handler(action, ev, noFocus)
		return consumed
	}

	// A quick second click is reported as a double click.
	if !click(tview.MouseLeftClick, board.Sq(7, 6)) || !click(tview.MouseLeftDoubleClick, board.Sq(5, 5)) {
		t.Fatal("click not consumed")
	}
	snap := session.Snapshot()
	if got := snap.Board.At(board.Sq(5, 5)); got != board.W(board.Knight) {
		t.Errorf("f3 = %v; want white knight", got)
	}

	outside := tcell.NewEventMouse(200, 200, tcell.Button1, tcell.ModNone)
	if consumed, _ := handler(tview.MouseLeftClick, outside, noFocus); consumed {
		t.Error("click outside the view was consumed")
	}

	focused := false
	down := tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone)
	handler(tview.MouseLeftDown, down, func(p tview.Primitive) { focused = p == view })
	if !focused {
		t.Error("mouse down did not focus the board")
	}
}

func TestBoardViewKeyboard(t *testing.T) {
	view, session, screen := newTestView(t)
	handler := view.InputHandler()
	noFocus := func(tview.Primitive) {}
	key := func(k tcell.Key) { handler(tcell.NewEventKey(k, 0, tcell.ModNone), noFocus) }
	char := func(r rune) { handler(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), noFocus) }

	if view.Cursor() != board.Sq(7, 4) {
		t.Fatalf("cursor starts at %v; want e1", view.Cursor())
	}
	key(tcell.KeyUp)
	key(tcell.KeyEnter)
	if snap := session.Snapshot(); !snap.Selecting || snap.Selected != board.Sq(6, 4) {
		t.Fatalf("Enter did not select e2: %+v", snap)
	}
	char('k')
	char('k')
	char(' ')
	snap := session.Snapshot()
	if snap.Turn != board.Black || snap.Board.At(board.Sq(4, 4)) != board.W(board.Pawn) {
		t.Fatalf("keyboard move failed: turn %v, e4 %v", snap.Turn, snap.Board.At(board.Sq(4, 4)))
	}

	view.Draw(screen)
	if got := bgAt(screen, view.layout, board.Sq(4, 4)); got != ThemeBasic.SquareCursor {
		t.Errorf("cursor background = %v; want %v", got, ThemeBasic.SquareCursor)
	}

	for i := 0; i < 10; i++ {
		key(tcell.KeyRight)
	}
	if view.Cursor() != board.Sq(4, 7) {
		t.Errorf("cursor = %v; want clamped to h4", view.Cursor())
	}

	char('r')
	if session.Snapshot().Turn != board.White {
		t.Error("r did not reset the game")
	}
}

func TestStatusFitsLongNames(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)

	layout := NewLayout(3, 1)
	screen.SetSize(layout.Width(), layout.Height())
	names := config.Players{White: strings.Repeat("W", 16), Black: strings.Repeat("B", 16)}
	view := NewBoardView(game.NewSession(), layout, ThemeBasic, names)
	view.SetRect(0, 0, layout.Width(), layout.Height())
	view.Draw(screen)

	row := rowText(screen, 0)
	if want := strings.Repeat("W", 9) + ": 0"; !strings.HasPrefix(row, want) {
		t.Errorf("score row = %q; want prefix %q", row, want)
	}
	if want := strings.Repeat("B", 9) + ": 0"; !strings.HasSuffix(row, want) {
		t.Errorf("score row = %q; want suffix %q", row, want)
	}

	if got := scoreLabel("Alice", 12, 20); got != "Alice: 12" {
		t.Errorf("scoreLabel short name = %q", got)
	}
	if got := scoreLabel("Alice", 12, 3); got != ": 12" {
		t.Errorf("scoreLabel without room = %q", got)
	}
}
