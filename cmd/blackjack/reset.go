package main

import (
	"fmt"

	"github.com/lox/blackjack/internal/prefs"
	"github.com/lox/blackjack/internal/score"
)

type ResetCmd struct {
	globalFlags
	Yes bool `kong:"short='y',help='Skip the confirmation prompt'"`
}

func (c *ResetCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}

	if !c.Yes {
		if !confirm("This permanently erases all scores, history and settings. Continue?") {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	for _, key := range []string{score.StorageKey, prefs.SettingsKey, prefs.TutorialKey, prefs.HintsKey} {
		if err := app.store.Delete(key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	fmt.Println("All game data erased")
	return nil
}
