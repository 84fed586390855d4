// Package gui is the terminal front end: it draws a session's board and
// turns mouse and keyboard input into clicks on it.
package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
)

type Client struct {
	App     *tview.Application
	Board   *BoardView
	Session *game.Session
	log     *zap.Logger
}

// NewClient builds the application for session. Esc or q quits.
func NewClient(session *game.Session, cfg *config.Config, log *zap.Logger) (*Client, error) {
	theme, err := ImportThemes(cfg.Theme, cfg.Themes)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := tview.NewApplication()
	view := NewBoardView(session, NewLayout(cfg.Layout.SquareWidth, cfg.Layout.SquareHeight), theme, cfg.Players)

	cl := &Client{
		App:     app,
		Board:   view,
		Session: session,
		log:     log,
	}
	app.SetInputCapture(cl.captureKeys)
	app.SetRoot(view, true).SetFocus(view).EnableMouse(true)
	return cl, nil
}

func (cl *Client) captureKeys(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		cl.log.Info("quit", zap.String("session", cl.Session.Name()))
		cl.App.Stop()
		return nil
	}
	return event
}

// SetScreen runs the application on s instead of the terminal. s must be
// initialized already; mouse reporting is turned on here since Run only does
// that for screens it creates itself.
func (cl *Client) SetScreen(s tcell.Screen) {
	s.EnableMouse()
	cl.App.SetScreen(s)
}

// Run blocks until the application stops.
func (cl *Client) Run() error {
	cl.log.Info("ui_start", zap.String("session", cl.Session.Name()))
	return cl.App.Run()
}

func (cl *Client) Stop() {
	cl.App.Stop()
}
