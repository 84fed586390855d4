package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/hotseat/pkg/board"
	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
)

// BoardView is a tview primitive showing a session. Left clicks on the
// board select and move pieces, a click on the reset control starts over.
// The keyboard drives a cursor as an alternative to the mouse.
type BoardView struct {
	*tview.Box
	session *game.Session
	layout  Layout
	theme   Theme
	names   config.Players

	cursor      board.Square
	cursorShown bool
}

func NewBoardView(session *game.Session, layout Layout, theme Theme, names config.Players) *BoardView {
	return &BoardView{
		Box:     tview.NewBox(),
		session: session,
		layout:  layout,
		theme:   theme,
		names:   names,
		cursor:  board.Sq(board.Size-1, 4),
	}
}

// origin is the top left cell of the board surface, centered in the view.
func (v *BoardView) origin() (int, int) {
	x, y, w, h := v.GetInnerRect()
	if extra := w - v.layout.Width(); extra > 0 {
		x += extra / 2
	}
	if extra := h - v.layout.Height(); extra > 0 {
		y += extra / 2
	}
	return x, y
}

func (v *BoardView) Draw(screen tcell.Screen) {
	v.Box.Draw(screen)
	ox, oy := v.origin()
	x, y, w, h := v.GetInnerRect()

	f := frame{
		layout: v.layout,
		theme:  v.theme,
		names:  v.names,
		snap:   v.session.Snapshot(),
	}
	if v.cursorShown {
		cursor := v.cursor
		f.cursor = &cursor
	}
	f.draw(canvas{s: screen, x: ox, y: oy, w: x + w - ox, h: y + h - oy})
}

// Press handles a pointer press at (x, y) relative to the board surface.
func (v *BoardView) Press(x, y int) Hit {
	hit := v.layout.Hit(x, y)
	switch hit.Kind {
	case HitReset:
		v.session.Reset()
	case HitSquare:
		v.session.Click(hit.Square)
	}
	return hit
}

func (v *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !v.InRect(mx, my) {
			return false, nil
		}
		switch action {
		case tview.MouseLeftDown:
			setFocus(v)
			return true, nil
		case tview.MouseLeftClick, tview.MouseLeftDoubleClick:
			// Two quick clicks on different squares arrive as a double
			// click; each is still a click on the board.
			ox, oy := v.origin()
			v.cursorShown = false
			v.Press(mx-ox, my-oy)
			return true, nil
		}
		return false, nil
	})
}

func (v *BoardView) moveCursor(dRow, dCol int) {
	next := board.Sq(v.cursor.Row+dRow, v.cursor.Col+dCol)
	if next.Valid() {
		v.cursor = next
	}
	v.cursorShown = true
}

func (v *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			v.moveCursor(-1, 0)
		case tcell.KeyDown:
			v.moveCursor(1, 0)
		case tcell.KeyLeft:
			v.moveCursor(0, -1)
		case tcell.KeyRight:
			v.moveCursor(0, 1)
		case tcell.KeyEnter:
			v.cursorShown = true
			v.session.Click(v.cursor)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'k':
				v.moveCursor(-1, 0)
			case 'j':
				v.moveCursor(1, 0)
			case 'h':
				v.moveCursor(0, -1)
			case 'l':
				v.moveCursor(0, 1)
			case ' ':
				v.cursorShown = true
				v.session.Click(v.cursor)
			case 'r':
				v.session.Reset()
			}
		}
	})
}

// Cursor returns the keyboard cursor square.
func (v *BoardView) Cursor() board.Square { return v.cursor }
