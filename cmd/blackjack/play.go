package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjack/internal/audio"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/i18n"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	globalFlags
	Seed *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
}

func (c *PlayCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}
	logger := app.logger

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Debug("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	shoe := deck.NewShoe(app.cfg.Game.Decks, rng)
	shoe.Shuffle()

	session := game.NewSession(game.Config{
		NumDecks:     app.cfg.Game.Decks,
		StartingCash: app.cfg.Game.StartingCash,
	}, shoe, logger)
	session.SetLedger(app.tracker)
	session.RestoreBalance(app.tracker.Record().CurrentScore.CurrentCash)

	if c.Debug {
		cues := &game.CuePlayer{Player: &audio.LogPlayer{Logger: logger}}
		session.EventBus().Subscribe(cues)
		defer session.EventBus().Unsubscribe(cues)
	}

	model := tui.New(session, app.tracker, app.prefs, i18n.English, app.cfg.DealerInterval(), logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
