package bot

import (
	"math/rand"

	"tilequeue/internal/domain"
)

// Agent represents an autonomous player acting on behalf of a session owner.
type Agent struct {
	ID       string
	Strategy Brain
}

// NewAgent builds an agent for ownerID with the strategy named by level.
func NewAgent(ownerID string, level BotLevel, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(level, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: ownerID, Strategy: brain}, nil
}

// Play asks the agent to pick its next move for the board.
func (a *Agent) Play(board domain.Board) Move {
	return a.Strategy.ChooseMove(board)
}
