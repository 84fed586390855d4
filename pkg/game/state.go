// Package game implements the game-state engine: the board state, the move
// engine and the selection state machine, plus a Session that owns them.
package game

import (
	"github.com/qnkhuat/hotseat/pkg/board"
)

// Scores is the material each side has captured.
type Scores struct {
	White int
	Black int
}

// Of returns the score of side.
func (s Scores) Of(side board.Side) int {
	if side == board.Black {
		return s.Black
	}
	return s.White
}

func (s *Scores) credit(side board.Side, points int) {
	if side == board.Black {
		s.Black += points
	} else {
		s.White += points
	}
}

// Move records one applied relocation.
type Move struct {
	From     board.Square
	To       board.Square
	Piece    board.Piece
	Captured board.Piece
	Points   int
}

// IsCapture reports whether the move took a piece.
func (m Move) IsCapture() bool { return !m.Captured.IsEmpty() }

func (m Move) String() string { return m.From.String() + m.To.String() }

// State is the board state: grid, side to move, selection and scores.
type State struct {
	grid      board.Board
	turn      board.Side
	selected  board.Square
	selecting bool
	scores    Scores
	over      bool
	last      *Move
}

// NewState returns a state in the starting position.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Initialize replaces the grid with the starting layout.
func (s *State) Initialize() {
	s.grid = board.Standard()
}

// Reset puts the state back to the start of a game.
func (s *State) Reset() {
	s.Initialize()
	s.turn = board.White
	s.selected = board.Square{}
	s.selecting = false
	s.scores = Scores{}
	s.over = false
	s.last = nil
}

// OccupantAt returns the piece on sq. sq must be valid.
func (s *State) OccupantAt(sq board.Square) board.Piece {
	return s.grid.At(sq)
}

// Turn returns the side to move.
func (s *State) Turn() board.Side { return s.turn }

// Selection returns the selected square, if any.
func (s *State) Selection() (board.Square, bool) { return s.selected, s.selecting }

// Phase returns the selection state machine phase.
func (s *State) Phase() Phase {
	if s.selecting {
		return PieceSelected
	}
	return Idle
}

func (s *State) Scores() Scores { return s.scores }

// Board returns a copy of the grid.
func (s *State) Board() board.Board { return s.grid }

// Over is always false: no win condition is detected.
func (s *State) Over() bool { return s.over }

// LastMove returns the most recent applied move, if any.
func (s *State) LastMove() (Move, bool) {
	if s.last == nil {
		return Move{}, false
	}
	return *s.last, true
}

func (s *State) selectSquare(sq board.Square) {
	s.selected = sq
	s.selecting = true
}

func (s *State) clearSelection() {
	s.selected = board.Square{}
	s.selecting = false
}

// Place puts p on sq, for setting up positions. sq must be valid.
func (s *State) Place(sq board.Square, p board.Piece) {
	s.grid.Set(sq, p)
}

// SetTurn sets the side to move, for setting up positions.
func (s *State) SetTurn(side board.Side) {
	s.turn = side
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Board     board.Board
	Turn      board.Side
	Selected  board.Square
	Selecting bool
	Scores    Scores
	LastMove  *Move
	Over      bool
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Board:     s.grid,
		Turn:      s.turn,
		Selected:  s.selected,
		Selecting: s.selecting,
		Scores:    s.scores,
		Over:      s.over,
	}
	if s.last != nil {
		m := *s.last
		snap.LastMove = &m
	}
	return snap
}
