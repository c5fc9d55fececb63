package main

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/prefs"
	"github.com/lox/blackjack/internal/score"
	"github.com/lox/blackjack/internal/storage"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	Config string `kong:"default='',help='Path to HCL config file (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

// app is the wired-up environment a subcommand runs against.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	store   storage.Store
	tracker *score.Tracker
	prefs   *prefs.Manager
}

func (g globalFlags) setup() (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := shared.SetupLogger(cfg.Game.LogLevel, g.Debug)

	store := openStore(cfg.Data.Dir, logger)
	tracker := score.NewTracker(store, quartz.NewReal(), logger)
	mgr := prefs.NewManager(store, logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		tracker: tracker,
		prefs:   mgr,
	}, nil
}

// openStore falls back to an in-memory store so the game stays playable
// even when the data directory cannot be created.
func openStore(dir string, logger *log.Logger) storage.Store {
	fs, err := storage.NewFileStore(dir)
	if err != nil {
		logger.Warn("data directory unavailable, scores will not persist", "dir", dir, "error", err)
		return storage.NewMemStore()
	}
	return fs
}
