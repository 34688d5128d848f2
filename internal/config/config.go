// Package config loads settings for the rolls tools from defaults, an
// optional YAML file, and ROLLS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"rolls/internal/logging"
)

// Config holds all rolls configuration.
type Config struct {
	// Input is the puzzle file read when no path is given on the command line.
	Input string `yaml:"input" env:"ROLLS_INPUT"`

	Log   LogConfig   `yaml:"log" envPrefix:"ROLLS_LOG_"`
	View  ViewConfig  `yaml:"view" envPrefix:"ROLLS_VIEW_"`
	Sweep SweepConfig `yaml:"sweep" envPrefix:"ROLLS_SWEEP_"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // console, json
}

// ViewConfig configures the interactive viewer.
type ViewConfig struct {
	Scale    int `yaml:"scale" env:"SCALE"`
	TPS      int `yaml:"tps" env:"TPS"`
	PassRate int `yaml:"pass_rate" env:"PASS_RATE"`
}

// SweepConfig configures batch runs over generated boards.
type SweepConfig struct {
	Workers   int       `yaml:"workers" env:"WORKERS"`
	Width     int       `yaml:"width" env:"WIDTH"`
	Height    int       `yaml:"height" env:"HEIGHT"`
	Seeds     int       `yaml:"seeds" env:"SEEDS"`
	Densities []float64 `yaml:"densities" env:"DENSITIES" envSeparator:","`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: "input.txt",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		View: ViewConfig{
			Scale:    8,
			TPS:      60,
			PassRate: 4,
		},
		Sweep: SweepConfig{
			Workers:   4,
			Width:     100,
			Height:    100,
			Seeds:     8,
			Densities: []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment, in increasing precedence.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.View.Scale <= 0 {
		return errors.New("view.scale must be positive")
	}
	if c.View.TPS <= 0 || c.View.PassRate <= 0 {
		return errors.New("view.tps and view.pass_rate must be positive")
	}
	if c.Sweep.Workers <= 0 {
		return errors.New("sweep.workers must be positive")
	}
	if c.Sweep.Width <= 0 || c.Sweep.Height <= 0 || c.Sweep.Seeds <= 0 {
		return errors.New("sweep.width, sweep.height and sweep.seeds must be positive")
	}
	if len(c.Sweep.Densities) == 0 {
		return errors.New("sweep.densities must not be empty")
	}
	for _, d := range c.Sweep.Densities {
		if d < 0 || d > 1 {
			return fmt.Errorf("sweep density %v outside [0,1]", d)
		}
	}
	return nil
}
