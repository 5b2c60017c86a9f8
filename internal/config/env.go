package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// RuntimeConfig is read from the Nakama runtime environment.
type RuntimeConfig struct {
	// TicketSecret signs join tickets. Empty disables ticket checks.
	TicketSecret  string        `env:"TILEQUEUE_TICKET_SECRET"`
	TicketTTL     time.Duration `env:"TILEQUEUE_TICKET_TTL" envDefault:"10m"`
	TickRate      int           `env:"TILEQUEUE_TICK_RATE" envDefault:"5"`
	MaxSpectators int           `env:"TILEQUEUE_MAX_SPECTATORS" envDefault:"4"`
	ConfigPath    string        `env:"TILEQUEUE_CONFIG_PATH" envDefault:"data/tilequeue.yaml"`
	// Seed fixes the piece generator for reproducible matches; 0 means time-seeded.
	Seed int64 `env:"TILEQUEUE_SEED"`
}

// ParseRuntimeEnv parses vars (the runtime env map) into a RuntimeConfig.
func ParseRuntimeEnv(vars map[string]string) (RuntimeConfig, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	var rc RuntimeConfig
	if err := env.ParseWithOptions(&rc, env.Options{Environment: vars}); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if rc.TickRate <= 0 {
		return RuntimeConfig{}, fmt.Errorf("parse env: tick rate must be positive, got %d", rc.TickRate)
	}
	if rc.MaxSpectators < 0 {
		rc.MaxSpectators = 0
	}
	return rc, nil
}
