// Package guide reads game-state snapshots and produces advisory text:
// contextual hints during play and the first-run tutorial sequence. It
// is deliberately decoupled from gameplay correctness; nothing here
// feeds back into the state machine.
package guide

import (
	"strconv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/i18n"
	"github.com/lox/blackjack/internal/prefs"
)

// Engine turns snapshots into hint text according to the user's hint
// preferences.
type Engine struct {
	catalog i18n.Catalog
	hints   prefs.Hints
}

// NewEngine creates a hint engine with the given catalog and
// preferences.
func NewEngine(catalog i18n.Catalog, hints prefs.Hints) *Engine {
	return &Engine{catalog: catalog, hints: hints}
}

// SetHints updates the hint preferences.
func (e *Engine) SetHints(h prefs.Hints) {
	e.hints = h
}

// Hint returns the advisory line for the given snapshot, or "" when
// context help is off or nothing useful applies.
func (e *Engine) Hint(snap game.Snapshot) string {
	if !e.hints.ShowContextHelp {
		return ""
	}

	switch snap.State {
	case game.Betting:
		if snap.CurrentBet == 0 {
			return e.t("hint.bet.select", nil)
		}
		return e.t("hint.bet.ready", nil)

	case game.PlayerTurn:
		return e.playerHint(snap)

	case game.DealerTurn:
		up := "?"
		if len(snap.DealerHand) > 0 {
			up = snap.DealerHand[0].String()
		}
		return e.t("hint.dealer.wait", i18n.Args{"up": up})

	case game.HandOver:
		return e.t("hint.handOver", nil)
	}
	return ""
}

func (e *Engine) playerHint(snap game.Snapshot) string {
	if len(snap.PlayerHands) == 0 {
		return ""
	}
	hand := snap.PlayerHands[0]
	value := hand.Value()

	var up deck.Card
	if len(snap.DealerHand) > 0 {
		up = snap.DealerHand[0]
	}
	upStrong := up.Rank >= deck.Nine
	upWeak := up.Rank >= deck.Two && up.Rank <= deck.Six

	args := i18n.Args{"value": strconv.Itoa(value)}

	switch {
	case value >= 20:
		return e.leveled("hint.player.stand", args)
	case value == 11 && snap.Balance >= snap.CurrentBet:
		return e.leveled("hint.player.double", args)
	case value >= 12 && 21-value <= 5:
		return e.leveled("hint.player.bust", args)
	case upStrong && value >= 12 && value <= 16:
		return e.leveled("hint.player.dealerStrong", args)
	case upWeak && value >= 12 && value <= 16:
		return e.leveled("hint.player.dealerWeak", args)
	case value <= 10:
		return e.leveled("hint.player.hit", args)
	}
	return ""
}

// leveled appends the expert variant suffix when the user has opted
// into terser, strategy-flavoured hints.
func (e *Engine) leveled(key string, args i18n.Args) string {
	if e.hints.HintLevel == "expert" {
		return e.t(key+".expert", args)
	}
	return e.t(key, args)
}

func (e *Engine) t(key string, args i18n.Args) string {
	return e.catalog.T(key, args)
}
