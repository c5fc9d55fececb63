// Package config loads the game configuration from an HCL file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete game configuration.
type Config struct {
	Game GameSettings
	Data DataSettings
}

// GameSettings holds table rules and pacing.
type GameSettings struct {
	Decks            int    `hcl:"decks,optional"`
	StartingCash     int    `hcl:"starting_cash,optional"`
	DealerIntervalMS int    `hcl:"dealer_interval_ms,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// DataSettings holds persistence locations.
type DataSettings struct {
	Dir string `hcl:"dir,optional"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Decks:            6,
			StartingCash:     1000,
			DealerIntervalMS: 1000,
			LogLevel:         "info",
		},
		Data: DataSettings{
			Dir: defaultDataDir(),
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "blackjack")
	}
	return ".blackjack"
}

// Load reads configuration from an HCL file. A missing file returns
// defaults; a malformed one is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Both blocks are optional; pointer fields let gohcl treat absence
	// as nil instead of an error.
	var raw struct {
		Game *GameSettings `hcl:"game,block"`
		Data *DataSettings `hcl:"data,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.Data != nil {
		cfg.Data = *raw.Data
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Game.Decks == 0 {
		cfg.Game.Decks = def.Game.Decks
	}
	if cfg.Game.StartingCash == 0 {
		cfg.Game.StartingCash = def.Game.StartingCash
	}
	if cfg.Game.DealerIntervalMS == 0 {
		cfg.Game.DealerIntervalMS = def.Game.DealerIntervalMS
	}
	if cfg.Game.LogLevel == "" {
		cfg.Game.LogLevel = def.Game.LogLevel
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = def.Data.Dir
	}

	return &cfg, nil
}

// Validate checks the configuration for nonsense values.
func (c *Config) Validate() error {
	if c.Game.Decks < 1 || c.Game.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Game.Decks)
	}
	if c.Game.StartingCash <= 0 {
		return fmt.Errorf("starting cash must be positive, got %d", c.Game.StartingCash)
	}
	if c.Game.DealerIntervalMS < 0 {
		return fmt.Errorf("dealer interval must not be negative, got %d", c.Game.DealerIntervalMS)
	}
	switch c.Game.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Game.LogLevel)
	}
	return nil
}

// DealerInterval returns the pacing between dealer draws.
func (c *Config) DealerInterval() time.Duration {
	return time.Duration(c.Game.DealerIntervalMS) * time.Millisecond
}
