package bot

import (
	"tilequeue/internal/app"
	"tilequeue/internal/domain"
)

// Move represents the decision made by the AI. The zero Move means "wait".
type Move struct {
	Op app.Operation
}

// Idle reports whether the bot chose not to act.
func (m Move) Idle() bool { return m.Op == 0 }

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	ChooseMove(board domain.Board) Move
}
