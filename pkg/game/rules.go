package game

import (
	"github.com/qnkhuat/hotseat/pkg/board"
)

// Rule decides whether a piece may travel from one square to another on b.
// Occupancy of the destination by the mover's own side is checked before a
// Rule is consulted.
type Rule interface {
	Permits(b *board.Board, from, to board.Square) bool
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(b *board.Board, from, to board.Square) bool

func (f RuleFunc) Permits(b *board.Board, from, to board.Square) bool { return f(b, from, to) }

// Unrestricted permits every relocation.
var Unrestricted Rule = RuleFunc(func(*board.Board, board.Square, board.Square) bool { return true })

// Rules maps a piece kind to the Rule governing it. Kinds without an entry
// are unrestricted.
type Rules map[board.Kind]Rule

// FreeMovement returns a rule set where every kind is unrestricted.
func FreeMovement() Rules {
	rules := make(Rules, len(board.Kinds))
	for _, k := range board.Kinds {
		rules[k] = Unrestricted
	}
	return rules
}

func (r Rules) permits(b *board.Board, from, to board.Square) bool {
	rule, ok := r[b.At(from).Kind]
	if !ok || rule == nil {
		return true
	}
	return rule.Permits(b, from, to)
}
