package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Width               int     `json:"width" yaml:"width"`
	Height              int     `json:"height" yaml:"height"`
	WrapMode            string  `json:"wrap_mode" yaml:"wrap_mode"`
	TickRateHz          float64 `json:"tick_rate_hz" yaml:"tick_rate_hz"`
	ProductionThreshold int     `json:"production_threshold" yaml:"production_threshold"`
	SurvivalCounts      []int   `json:"survival_counts" yaml:"survival_counts"`
	Seed                int64   `json:"seed" yaml:"seed"`
	SeedStrategy        string  `json:"seed_strategy" yaml:"seed_strategy"`
	Density             float64 `json:"density" yaml:"density"`
	Workers             int     `json:"workers" yaml:"workers"`
	UseMemoryPool       bool    `json:"use_memory_pool" yaml:"use_memory_pool"`
	AutoRestart         bool    `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int     `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	InjectionCount      int     `json:"injection_count" yaml:"injection_count"`
	MaxGenerations      int     `json:"max_generations" yaml:"max_generations"`
}

// DefaultConfig returns the reference setup: a 25x25 torus at 4 ticks per second
func DefaultConfig() Config {
	return Config{
		Width:               25,
		Height:              25,
		WrapMode:            "toroidal",
		TickRateHz:          4,
		ProductionThreshold: 3,
		SurvivalCounts:      []int{2, 3},
		SeedStrategy:        "uniform",
		Density:             0.3,
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks ranges that the simulation cannot recover from
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size %dx%d", c.Width, c.Height)
	case c.TickRateHz <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick rate %v", c.TickRateHz)
	case c.ProductionThreshold < 0 || c.ProductionThreshold > 8:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] production threshold %d", c.ProductionThreshold)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v", c.Density)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d", c.Workers)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative restart settings")
	}
	if slices.ContainsFunc(c.SurvivalCounts, func(n int) bool { return n < 0 || n > 8 }) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] survival counts %v", c.SurvivalCounts)
	}
	return nil
}

// TickInterval converts the tick rate into the delay between generations
func (c Config) TickInterval() time.Duration {
	if c.TickRateHz <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.TickRateHz)
}
