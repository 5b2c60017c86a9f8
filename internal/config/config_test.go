package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tilequeue/internal/domain"
)

func TestParseGameConfig(t *testing.T) {
	data := []byte(`
queue_capacity: 6
stack_capacity: 2
bot:
  enabled: true
  level: keeper
  idle_ticks: 10
  min_delay_ticks: 3
  max_delay_ticks: 1
`)
	c, err := ParseGameConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	caps := c.Capacities()
	want := domain.Capacities{Queue: 6, Stack: 2, History: domain.HistoryCapacity}
	if caps != want {
		t.Fatalf("capacities = %+v, want %+v", caps, want)
	}

	bot := c.BotSettings()
	if !bot.Enabled || bot.Level != "keeper" || bot.IdleTicks != 10 {
		t.Fatalf("bot = %+v", bot)
	}
	if bot.MinDelayTicks != 3 || bot.MaxDelayTicks != 3 {
		t.Fatalf("delays = %d..%d, want 3..3", bot.MinDelayTicks, bot.MaxDelayTicks)
	}
}

func TestParseGameConfigError(t *testing.T) {
	_, err := ParseGameConfig([]byte("queue_capacity: [1, 2"))
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal game config") {
		t.Fatalf("err = %v", err)
	}
}

func TestNilGameConfigDefaults(t *testing.T) {
	var c *GameConfig
	if got := c.Capacities(); got != domain.DefaultCapacities() {
		t.Fatalf("capacities = %+v", got)
	}
	if c.BotSettings().Enabled {
		t.Fatalf("bots should be disabled without config")
	}
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilequeue.yaml")

	// A missing file fails without sticking.
	if err := LoadGameConfig(path); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if GetGameConfig() != nil {
		t.Fatalf("config should stay unset after a failed load")
	}

	if err := os.WriteFile(path, []byte("history_capacity: 20\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadGameConfig(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := GetGameConfig().Capacities().History; got != 20 {
		t.Fatalf("history capacity = %d, want 20", got)
	}
	// Later loads are no-ops.
	if err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("second load: %v", err)
	}
}

func TestParseRuntimeEnvDefaults(t *testing.T) {
	rc, err := ParseRuntimeEnv(nil)
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if rc.TicketSecret != "" || rc.TicketTTL != 10*time.Minute || rc.TickRate != 5 || rc.MaxSpectators != 4 {
		t.Fatalf("defaults = %+v", rc)
	}
	if rc.ConfigPath != "data/tilequeue.yaml" || rc.Seed != 0 {
		t.Fatalf("defaults = %+v", rc)
	}
}

func TestParseRuntimeEnvValues(t *testing.T) {
	rc, err := ParseRuntimeEnv(map[string]string{
		"TILEQUEUE_TICKET_SECRET":  "s3cret",
		"TILEQUEUE_TICKET_TTL":     "90s",
		"TILEQUEUE_TICK_RATE":      "10",
		"TILEQUEUE_MAX_SPECTATORS": "0",
		"TILEQUEUE_SEED":           "42",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if rc.TicketSecret != "s3cret" || rc.TicketTTL != 90*time.Second || rc.TickRate != 10 {
		t.Fatalf("values = %+v", rc)
	}
	if rc.MaxSpectators != 0 || rc.Seed != 42 {
		t.Fatalf("values = %+v", rc)
	}
}

func TestParseRuntimeEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "bad tick rate", vars: map[string]string{"TILEQUEUE_TICK_RATE": "fast"}},
		{name: "zero tick rate", vars: map[string]string{"TILEQUEUE_TICK_RATE": "0"}},
		{name: "bad ttl", vars: map[string]string{"TILEQUEUE_TICKET_TTL": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuntimeEnv(tt.vars)
			if err == nil || !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("err = %v, want parse env error", err)
			}
		})
	}
}
