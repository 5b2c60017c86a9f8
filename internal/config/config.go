package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"tilequeue/internal/domain"
)

// BotConfig controls the autoplay agent that acts for an idle owner.
type BotConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	// IdleTicks is how many ticks without owner input pass before the bot acts.
	IdleTicks     int `yaml:"idle_ticks"`
	MinDelayTicks int `yaml:"min_delay_ticks"`
	MaxDelayTicks int `yaml:"max_delay_ticks"`
}

type GameConfig struct {
	QueueCapacity   int       `yaml:"queue_capacity"`
	StackCapacity   int       `yaml:"stack_capacity"`
	HistoryCapacity int       `yaml:"history_capacity"`
	Bot             BotConfig `yaml:"bot"`
}

var (
	cfg   *GameConfig
	cfgMu sync.RWMutex
)

// LoadGameConfig loads the game configuration from the given path. Once a
// load succeeds later calls are no-ops; a failed load is retried next time.
func LoadGameConfig(path string) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if cfg != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read game config: %w", err)
	}
	c, err := ParseGameConfig(data)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// ParseGameConfig decodes a YAML game configuration.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, or nil before a successful load.
func GetGameConfig() *GameConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg
}

// Capacities returns the container sizes, falling back to defaults for unset values.
func (c *GameConfig) Capacities() domain.Capacities {
	if c == nil {
		return domain.DefaultCapacities()
	}
	return domain.Capacities{
		Queue:   c.QueueCapacity,
		Stack:   c.StackCapacity,
		History: c.HistoryCapacity,
	}.Normalize()
}

// BotSettings returns the bot section with delays defaulted and ordered.
func (c *GameConfig) BotSettings() BotConfig {
	if c == nil {
		return BotConfig{}
	}
	b := c.Bot
	if b.IdleTicks <= 0 {
		b.IdleTicks = 30
	}
	if b.MinDelayTicks <= 0 {
		b.MinDelayTicks = 1
	}
	if b.MaxDelayTicks < b.MinDelayTicks {
		b.MaxDelayTicks = b.MinDelayTicks
	}
	return b
}
