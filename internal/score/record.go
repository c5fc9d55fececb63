// Package score maintains the persisted, checksum-protected score
// ledger: the running match count for the current stake, the bust
// history, and lifetime totals.
//
// The checksum is a keyed non-cryptographic hash meant to catch
// corruption and casual tampering only. It is not a security control:
// anyone who reads this source can forge it, and that's acceptable for
// a single-player game.
package score

import "time"

const (
	// StorageKey is the persistence namespace for the ledger blob.
	StorageKey = "blackjack_scores"

	// DefaultStartCash is the bankroll a fresh session starts with and
	// the amount restored after a bankruptcy.
	DefaultStartCash = 1000

	recordVersion = 1
	maxHistory    = 10
	maxMatchCount = 10000
	maxDuration   = 7 * 24 * time.Hour
	clockSkew     = time.Minute
)

// CurrentScore tracks the session in progress: matches played since the
// last bankruptcy and the cash position.
type CurrentScore struct {
	MatchCount  int       `json:"matchCount"`
	StartCash   int       `json:"startCash"`
	CurrentCash int       `json:"currentCash"`
	StartDate   time.Time `json:"startDate"`
}

// HistoryEntry records one finished run, appended when the player goes
// bankrupt. Score is the number of matches survived.
type HistoryEntry struct {
	Score      int       `json:"score"`
	StartCash  int       `json:"startCash"`
	EndDate    time.Time `json:"endDate"`
	DurationMS int64     `json:"duration"`
}

// Record is the full persisted ledger.
type Record struct {
	CurrentScore CurrentScore   `json:"currentScore"`
	ScoreHistory []HistoryEntry `json:"scoreHistory"`
	BestScore    int            `json:"bestScore"`
	TotalGames   int            `json:"totalGames"`
	TotalMatches int            `json:"totalMatches"`
	Version      int            `json:"_version"`
	Checksum     string         `json:"_checksum"`
}

// DefaultRecord returns a fresh ledger with a valid checksum.
func DefaultRecord(now time.Time) Record {
	rec := Record{
		CurrentScore: CurrentScore{
			MatchCount:  0,
			StartCash:   DefaultStartCash,
			CurrentCash: DefaultStartCash,
			StartDate:   now,
		},
		ScoreHistory: []HistoryEntry{},
		Version:      recordVersion,
	}
	rec.Checksum = checksum(rec)
	return rec
}

// Copy returns a deep copy of the record.
func (r Record) Copy() Record {
	out := r
	out.ScoreHistory = make([]HistoryEntry, len(r.ScoreHistory))
	copy(out.ScoreHistory, r.ScoreHistory)
	return out
}
