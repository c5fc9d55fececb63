// Package share implements data import/export: a JSON envelope
// wrapping the raw persisted records, an optional prefix-tagged
// compressed transport encoding for low-bandwidth channels, and QR
// rendering of the payload.
package share

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/blackjack/internal/prefs"
	"github.com/lox/blackjack/internal/score"
	"github.com/lox/blackjack/internal/storage"
)

// Version is the envelope format version.
const Version = "1.0.0"

// Envelope bundles every persisted record for transfer. Each field
// carries the raw serialized form of the corresponding stored value;
// nil means the record was never written locally.
type Envelope struct {
	ExportDate time.Time `json:"exportDate"`
	Version    string    `json:"version"`
	Scores     *string   `json:"scores"`
	Settings   *string   `json:"settings"`
	Tutorial   *string   `json:"tutorial"`
	Hints      *string   `json:"hints"`
}

// exportKeys maps envelope fields to storage keys.
var exportKeys = []struct {
	key    string
	field  func(*Envelope) **string
}{
	{score.StorageKey, func(e *Envelope) **string { return &e.Scores }},
	{prefs.SettingsKey, func(e *Envelope) **string { return &e.Settings }},
	{prefs.TutorialKey, func(e *Envelope) **string { return &e.Tutorial }},
	{prefs.HintsKey, func(e *Envelope) **string { return &e.Hints }},
}

// Export collects the persisted records into an envelope.
func Export(store storage.Store, now time.Time) (Envelope, error) {
	env := Envelope{ExportDate: now, Version: Version}
	for _, ek := range exportKeys {
		raw, ok, err := store.Get(ek.key)
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to read %s: %w", ek.key, err)
		}
		if ok {
			s := string(raw)
			*ek.field(&env) = &s
		}
	}
	return env, nil
}

// Parse decodes an envelope from its transport form, transparently
// decompressing prefix-tagged payloads, and validates the required
// fields. Local state is never touched here; callers apply the
// envelope only after explicit confirmation.
func Parse(data []byte) (Envelope, error) {
	raw, err := decodeTransport(data)
	if err != nil {
		return Envelope{}, err
	}

	// Presence check distinct from zero values: exportDate and version
	// are the markers that this is actually one of our envelopes.
	var probe struct {
		ExportDate *time.Time `json:"exportDate"`
		Version    *string    `json:"version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Envelope{}, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if probe.ExportDate == nil || probe.Version == nil {
		return Envelope{}, fmt.Errorf("payload is missing exportDate or version; not an export envelope")
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return env, nil
}

// Apply overwrites the local records with the envelope's contents.
// Absent fields leave the corresponding local record untouched.
func (env Envelope) Apply(store storage.Store) error {
	for _, ek := range exportKeys {
		value := *ek.field(&env)
		if value == nil {
			continue
		}
		if err := store.Put(ek.key, []byte(*value)); err != nil {
			return fmt.Errorf("failed to write %s: %w", ek.key, err)
		}
	}
	return nil
}
