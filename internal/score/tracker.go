package score

import (
	"encoding/json"
	"math"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/storage"
)

// Tracker owns the in-memory ledger and keeps it in sync with the
// store. Every mutating operation is a complete load-modify-save unit;
// the tracker never writes a snapshot older than the one it last
// loaded because it is the only writer and holds the single copy.
type Tracker struct {
	store  storage.Store
	clock  quartz.Clock
	logger *log.Logger
	rec    Record
}

// NewTracker creates a tracker and loads the persisted ledger,
// resetting to defaults if the stored blob is missing, corrupted, or
// fails validation.
func NewTracker(store storage.Store, clock quartz.Clock, logger *log.Logger) *Tracker {
	t := &Tracker{
		store:  store,
		clock:  clock,
		logger: logger.WithPrefix("score"),
	}
	t.rec = t.load()
	return t
}

// Record returns a copy of the current ledger.
func (t *Tracker) Record() Record {
	return t.rec.Copy()
}

// load reads and validates the persisted record. Every failure path
// lands on defaults: a tampered ledger is worth less than a fresh one.
func (t *Tracker) load() Record {
	blob, ok, err := t.store.Get(StorageKey)
	if err != nil {
		t.logger.Warn("failed to read score data, using defaults", "error", err)
		return DefaultRecord(t.clock.Now())
	}
	if !ok {
		return DefaultRecord(t.clock.Now())
	}

	raw, err := decodeBlob(blob)
	if err != nil {
		t.logger.Warn("failed to decode score data, resetting", "error", err)
		return DefaultRecord(t.clock.Now())
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.logger.Warn("failed to parse score data, resetting", "error", err)
		return DefaultRecord(t.clock.Now())
	}

	if err := validate(rec, t.clock.Now()); err != nil {
		t.logger.Warn("score data failed validation, resetting", "error", err)
		return DefaultRecord(t.clock.Now())
	}

	return rec
}

// save recomputes the checksum and persists the record. Persistence
// failures are logged and swallowed; the game stays playable without a
// working store.
func (t *Tracker) save() {
	t.rec.Checksum = checksum(t.rec)
	raw, err := json.Marshal(t.rec)
	if err != nil {
		t.logger.Error("failed to marshal score data", "error", err)
		return
	}
	if err := t.store.Put(StorageKey, encodeBlob(raw)); err != nil {
		t.logger.Error("failed to save score data", "error", err)
	}
}

// IncrementMatchCount adds one finished match to the session count and
// the lifetime total.
func (t *Tracker) IncrementMatchCount() {
	t.rec.CurrentScore.MatchCount++
	t.rec.TotalMatches++
	t.save()
}

// UpdateCurrentCash records the player's cash after a resolution.
func (t *Tracker) UpdateCurrentCash(cash int) {
	t.rec.CurrentScore.CurrentCash = cash
	t.save()
}

// RecordBankruptcy closes out the current run: the final match count is
// pushed onto the history (newest first, capped), best score and total
// games are updated, and the session sub-record resets to defaults. It
// returns the final match count for display.
func (t *Tracker) RecordBankruptcy() int {
	now := t.clock.Now()
	finalScore := t.rec.CurrentScore.MatchCount

	entry := HistoryEntry{
		Score:      finalScore,
		StartCash:  t.rec.CurrentScore.StartCash,
		EndDate:    now,
		DurationMS: now.Sub(t.rec.CurrentScore.StartDate).Milliseconds(),
	}
	t.rec.ScoreHistory = append([]HistoryEntry{entry}, t.rec.ScoreHistory...)
	if len(t.rec.ScoreHistory) > maxHistory {
		t.rec.ScoreHistory = t.rec.ScoreHistory[:maxHistory]
	}

	if finalScore > t.rec.BestScore {
		t.rec.BestScore = finalScore
	}
	t.rec.TotalGames++

	t.rec.CurrentScore = CurrentScore{
		MatchCount:  0,
		StartCash:   DefaultStartCash,
		CurrentCash: DefaultStartCash,
		StartDate:   now,
	}

	t.save()
	return finalScore
}

// AverageScore returns matches per game over the player's lifetime,
// rounded to one decimal, or 0 before the first bankruptcy.
func (t *Tracker) AverageScore() float64 {
	if t.rec.TotalGames == 0 {
		return 0
	}
	avg := float64(t.rec.TotalMatches) / float64(t.rec.TotalGames)
	return math.Round(avg*10) / 10
}

// Reset discards all score data and starts a fresh ledger.
func (t *Tracker) Reset() {
	if err := t.store.Delete(StorageKey); err != nil {
		t.logger.Error("failed to delete score data", "error", err)
	}
	t.rec = DefaultRecord(t.clock.Now())
}

// MatchPlayed implements the game ledger hook: one more match finished
// with the given cash position.
func (t *Tracker) MatchPlayed(currentCash int) {
	t.IncrementMatchCount()
	t.UpdateCurrentCash(currentCash)
}

// Bankruptcy implements the game ledger hook. Returns the final match
// count and the restored starting cash.
func (t *Tracker) Bankruptcy() (finalScore, startingCash int) {
	return t.RecordBankruptcy(), DefaultStartCash
}
