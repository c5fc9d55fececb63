// Package prefs persists the user-facing preference records: sound and
// motion settings, tutorial progress, and hint options. Each record
// lives under its own storage key; a missing or unparseable record
// silently falls back to defaults.
package prefs

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/storage"
)

// Storage keys, one per record.
const (
	SettingsKey = "blackjack_settings"
	TutorialKey = "blackjack_tutorial"
	HintsKey    = "blackjack_hints"
)

// Settings holds sound, music and motion preferences.
type Settings struct {
	SoundEnabled  bool    `json:"soundEnabled"`
	MusicEnabled  bool    `json:"musicEnabled"`
	ReducedMotion bool    `json:"reducedMotion"`
	Volume        float64 `json:"volume"`
	MusicVolume   float64 `json:"musicVolume"`
}

// DefaultSettings returns the out-of-the-box settings.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		MusicEnabled: true,
		Volume:       0.7,
		MusicVolume:  0.5,
	}
}

// Tutorial tracks first-run walkthrough progress.
type Tutorial struct {
	Completed     bool       `json:"completed"`
	DontShowAgain bool       `json:"dontShowAgain"`
	CurrentStep   int        `json:"currentStep"`
	LastShown     *time.Time `json:"lastShown"`
}

// DefaultTutorial returns the never-shown tutorial state.
func DefaultTutorial() Tutorial {
	return Tutorial{}
}

// Hints holds contextual-help preferences.
type Hints struct {
	ShowTooltips    bool   `json:"showTooltips"`
	ShowContextHelp bool   `json:"showContextHelp"`
	HintLevel       string `json:"hintLevel"`
}

// DefaultHints returns hints at beginner level with everything on.
func DefaultHints() Hints {
	return Hints{
		ShowTooltips:    true,
		ShowContextHelp: true,
		HintLevel:       "beginner",
	}
}

// Manager loads and saves preference records through a store.
type Manager struct {
	store  storage.Store
	logger *log.Logger
}

// NewManager creates a preference manager over the given store.
func NewManager(store storage.Store, logger *log.Logger) *Manager {
	return &Manager{store: store, logger: logger.WithPrefix("prefs")}
}

// Settings loads the settings record, falling back to defaults.
func (m *Manager) Settings() Settings {
	out := DefaultSettings()
	m.loadJSON(SettingsKey, &out, DefaultSettings())
	return out
}

// SaveSettings persists the settings record.
func (m *Manager) SaveSettings(s Settings) {
	m.saveJSON(SettingsKey, s)
}

// Tutorial loads the tutorial record, falling back to defaults.
func (m *Manager) Tutorial() Tutorial {
	out := DefaultTutorial()
	m.loadJSON(TutorialKey, &out, DefaultTutorial())
	return out
}

// SaveTutorial persists the tutorial record.
func (m *Manager) SaveTutorial(t Tutorial) {
	m.saveJSON(TutorialKey, t)
}

// Hints loads the hints record, falling back to defaults.
func (m *Manager) Hints() Hints {
	out := DefaultHints()
	m.loadJSON(HintsKey, &out, DefaultHints())
	return out
}

// SaveHints persists the hints record.
func (m *Manager) SaveHints(h Hints) {
	m.saveJSON(HintsKey, h)
}

// loadJSON fills target from the stored record, restoring fallback on
// any read or parse failure.
func (m *Manager) loadJSON(key string, target, fallback any) {
	raw, ok, err := m.store.Get(key)
	if err != nil {
		m.logger.Warn("failed to read preferences, using defaults", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, target); err != nil {
		m.logger.Warn("failed to parse preferences, using defaults", "key", key, "error", err)
		// target may be partially filled; restore the fallback value
		data, _ := json.Marshal(fallback)
		_ = json.Unmarshal(data, target)
	}
}

func (m *Manager) saveJSON(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		m.logger.Error("failed to marshal preferences", "key", key, "error", err)
		return
	}
	if err := m.store.Put(key, raw); err != nil {
		m.logger.Error("failed to save preferences", "key", key, "error", err)
	}
}
