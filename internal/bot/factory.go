package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// BotLevel selects a strategy.
type BotLevel string

const (
	BotLevelRandom BotLevel = "random"
	BotLevelKeeper BotLevel = "keeper"
)

// NewBrain creates a new AI brain based on the specified level.
// rng may be nil to use a time-seeded default.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case BotLevelRandom:
		return &RandomBot{rng: rng}, nil
	case BotLevelKeeper, "":
		return &KeeperBot{Tuning: DefaultTuning}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
