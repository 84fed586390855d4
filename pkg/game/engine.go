package game

import (
	"github.com/qnkhuat/hotseat/pkg/board"
)

// Engine checks and applies moves on a State. It keeps no state of its own;
// the zero value uses unrestricted movement for every kind.
type Engine struct {
	Rules Rules
}

// IsLegal reports whether the piece on from may move to to.
func (e Engine) IsLegal(s *State, from, to board.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	mover := s.grid.At(from)
	if mover.IsEmpty() {
		return false
	}
	target := s.grid.At(to)
	if !target.IsEmpty() && target.Side == mover.Side {
		return false
	}
	return e.Rules.permits(&s.grid, from, to)
}

// Apply moves the piece on from to to, crediting the mover with the value
// of any captured piece. It does nothing and returns false if the move is
// not legal.
func (e Engine) Apply(s *State, from, to board.Square) (Move, bool) {
	if !e.IsLegal(s, from, to) {
		return Move{}, false
	}
	mover := s.grid.At(from)
	m := Move{
		From:     from,
		To:       to,
		Piece:    mover,
		Captured: s.grid.At(to),
	}
	if m.IsCapture() {
		m.Points = m.Captured.Value()
		s.scores.credit(mover.Side, m.Points)
	}
	s.grid.Set(to, mover)
	s.grid.Set(from, board.Empty)
	s.last = &m
	return m, true
}

// Reset puts s back to the start of a game.
func (e Engine) Reset(s *State) {
	s.Reset()
}

// Phase is the selection state machine phase.
type Phase int

const (
	Idle Phase = iota
	PieceSelected
)

func (p Phase) String() string {
	if p == PieceSelected {
		return "PieceSelected"
	}
	return "Idle"
}

// Outcome is what a click did.
type Outcome int

const (
	// Ignored: idle click on an empty square or an opponent piece.
	Ignored Outcome = iota
	// Selected: idle click on a piece of the side to move.
	Selected
	// Moved: the selected piece moved and the turn passed.
	Moved
	// Rejected: the attempted move was not legal; the selection is gone.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Click feeds one grid click to the selection state machine. The returned
// Move is only meaningful when the outcome is Moved.
func (e Engine) Click(s *State, sq board.Square) (Outcome, Move) {
	if !s.selecting {
		if !sq.Valid() {
			return Ignored, Move{}
		}
		p := s.grid.At(sq)
		if p.IsEmpty() || p.Side != s.turn {
			return Ignored, Move{}
		}
		s.selectSquare(sq)
		return Selected, Move{}
	}

	from := s.selected
	s.clearSelection()
	m, ok := e.Apply(s, from, sq)
	if !ok {
		return Rejected, Move{}
	}
	s.turn = s.turn.Opponent()
	return Moved, m
}
