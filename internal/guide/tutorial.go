package guide

import (
	"time"

	"github.com/lox/blackjack/internal/prefs"
)

// Step is one screen of the first-run walkthrough. Highlight names the
// UI region a renderer should spotlight.
type Step struct {
	TitleKey  string
	DescKey   string
	Highlight string
}

// Steps returns the tutorial sequence in order.
func Steps() []Step {
	return []Step{
		{TitleKey: "tutorial.welcome.title", DescKey: "tutorial.welcome.desc", Highlight: "table"},
		{TitleKey: "tutorial.betting.title", DescKey: "tutorial.betting.desc", Highlight: "betting"},
		{TitleKey: "tutorial.dealing.title", DescKey: "tutorial.dealing.desc", Highlight: "hands"},
		{TitleKey: "tutorial.actions.title", DescKey: "tutorial.actions.desc", Highlight: "actions"},
		{TitleKey: "tutorial.outcome.title", DescKey: "tutorial.outcome.desc", Highlight: "message"},
	}
}

// ShouldShow reports whether the tutorial should open on launch.
func ShouldShow(t prefs.Tutorial) bool {
	return !t.Completed && !t.DontShowAgain
}

// Advance moves to the next step, marking the tutorial completed past
// the last one.
func Advance(t prefs.Tutorial, now time.Time) prefs.Tutorial {
	t.CurrentStep++
	t.LastShown = &now
	if t.CurrentStep >= len(Steps()) {
		t.Completed = true
		t.CurrentStep = 0
	}
	return t
}

// Back moves to the previous step, stopping at the first.
func Back(t prefs.Tutorial) prefs.Tutorial {
	if t.CurrentStep > 0 {
		t.CurrentStep--
	}
	return t
}

// Skip marks the tutorial finished without walking the steps.
func Skip(t prefs.Tutorial, now time.Time) prefs.Tutorial {
	t.Completed = true
	t.CurrentStep = 0
	t.LastShown = &now
	return t
}
