package utils

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/sheikhrachel/game-of-colors/rules"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != 25 || cfg.Height != 25 {
		t.Errorf("expected 25x25, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ProductionThreshold != 3 || !slices.Equal(cfg.SurvivalCounts, []int{2, 3}) {
		t.Errorf("unexpected rule defaults: %d %v", cfg.ProductionThreshold, cfg.SurvivalCounts)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("expected 250ms interval at 4Hz, got %v", cfg.TickInterval())
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "goc.yaml", `
width: 40
height: 12
wrap_mode: clipped
tick_rate_hz: 10
survival_counts: [3]
seed_strategy: sparse
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 12 || cfg.WrapMode != "clipped" {
		t.Errorf("unexpected grid settings: %+v", cfg)
	}
	if !slices.Equal(cfg.SurvivalCounts, []int{3}) {
		t.Errorf("expected survival [3], got %v", cfg.SurvivalCounts)
	}
	// Unset keys keep their defaults.
	if cfg.ProductionThreshold != 3 || cfg.Density != 0.3 {
		t.Errorf("defaults lost: threshold=%d density=%v", cfg.ProductionThreshold, cfg.Density)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "goc.json", `{"width": 8, "height": 9, "seed": 77, "auto_restart": true}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 9 || cfg.Seed != 77 || !cfg.AutoRestart {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFile(t, "broken.json", `{"width": "wide"}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero rate", func(c *Config) { c.TickRateHz = 0 }},
		{"threshold above eight", func(c *Config) { c.ProductionThreshold = 9 }},
		{"survival above eight", func(c *Config) { c.SurvivalCounts = []int{2, 9} }},
		{"density above one", func(c *Config) { c.Density = 1.2 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
	}

	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	var pop rules.Counts
	pop[rules.Red] = 10
	pop[rules.Empty] = 90
	s.Update(1, pop, 100*time.Millisecond)

	if s.AveragePopulation != 10 {
		t.Errorf("expected first average 10, got %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond < 9.99 || s.GenerationsPerSecond > 10.01 {
		t.Errorf("expected 10 gen/sec, got %v", s.GenerationsPerSecond)
	}

	pop[rules.Red] = 20
	pop[rules.Empty] = 80
	s.Update(2, pop, 0)
	if s.AveragePopulation < 10.99 || s.AveragePopulation > 11.01 {
		t.Errorf("expected moving average 11, got %v", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("expected 2 generations, got %d", s.TotalGenerations)
	}
}

func TestStatsRuntimeOnCopy(t *testing.T) {
	s := NewStats()
	s.StartTime = time.Now().Add(-time.Minute)

	// Stats are handed out by value, so Runtime must work on a copy
	snapshot := func() Stats { return *s }
	if rt := snapshot().Runtime(); rt < time.Minute {
		t.Errorf("expected runtime of at least a minute, got %v", rt)
	}
}
