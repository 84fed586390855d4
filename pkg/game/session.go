package game

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qnkhuat/hotseat/pkg/board"
)

// Session owns one game: its state, the engine applied to it and the logger
// it reports to. All methods are safe for concurrent use; each holds the
// session lock for a whole operation.
type Session struct {
	id     string
	name   string
	engine Engine
	log    *zap.Logger

	mu    sync.Mutex
	state *State
}

// Option configures a Session.
type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithName overrides the generated session name.
func WithName(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.name = name
		}
	}
}

func WithEngine(e Engine) Option {
	return func(s *Session) { s.engine = e }
}

// NewSession starts a game in the initial state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:    uuid.NewString(),
		name:  petname.Generate(2, "-"),
		log:   zap.NewNop(),
		state: NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id), zap.String("session", s.name))
	s.log.Info("session_start")
	return s
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Name() string { return s.name }

// Click handles a click on sq.
func (s *Session) Click(sq board.Square) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, _ := s.state.Selection()
	mover := s.state.Turn()
	outcome, m := s.engine.Click(s.state, sq)
	switch outcome {
	case Selected:
		s.log.Debug("select", zap.Stringer("square", sq))
	case Rejected:
		s.log.Debug("move_rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", sq),
			zap.Stringer("turn", mover),
		)
	case Moved:
		scores := s.state.Scores()
		s.log.Info("move",
			zap.Stringer("from", m.From),
			zap.Stringer("to", m.To),
			zap.String("piece", m.Piece.Code()),
			zap.String("captured", m.Captured.Code()),
			zap.Int("points", m.Points),
			zap.Int("white_score", scores.White),
			zap.Int("black_score", scores.Black),
			zap.Stringer("next_turn", s.state.Turn()),
		)
		if m.Captured.Kind == board.King {
			s.log.Warn("king_captured",
				zap.Stringer("side", m.Captured.Side),
				zap.Stringer("square", m.To),
				zap.String("placement", s.state.grid.Placement()),
			)
		}
	}
	return outcome
}

// Reset starts the game over.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset(s.state)
	s.log.Info("reset")
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot()
}

// Setup runs f against the state under the session lock, for arranging
// positions.
func (s *Session) Setup(f func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f(s.state)
}
