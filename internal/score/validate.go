package score

import (
	"fmt"
	"time"
)

// validate checks field-level sanity and the checksum. Any failure
// means the record is discarded in favour of defaults; corrupted data
// is never partially repaired.
func validate(r Record, now time.Time) error {
	if r.CurrentScore.MatchCount < 0 || r.BestScore < 0 || r.TotalGames < 0 || r.TotalMatches < 0 {
		return fmt.Errorf("negative counter")
	}
	if r.TotalGames > 0 && r.BestScore > r.TotalMatches {
		return fmt.Errorf("best score %d exceeds total matches %d", r.BestScore, r.TotalMatches)
	}
	if len(r.ScoreHistory) > maxHistory {
		return fmt.Errorf("history has %d entries, max %d", len(r.ScoreHistory), maxHistory)
	}
	if r.CurrentScore.StartDate.After(now.Add(clockSkew)) {
		return fmt.Errorf("session start date is in the future")
	}
	for i, entry := range r.ScoreHistory {
		if entry.Score < 0 || entry.Score > maxMatchCount {
			return fmt.Errorf("history entry %d: score %d out of range", i, entry.Score)
		}
		if entry.EndDate.After(now.Add(clockSkew)) {
			return fmt.Errorf("history entry %d: end date is in the future", i)
		}
		if entry.DurationMS < 0 || entry.DurationMS > maxDuration.Milliseconds() {
			return fmt.Errorf("history entry %d: duration %dms out of range", i, entry.DurationMS)
		}
	}
	if !verifyChecksum(r) {
		return fmt.Errorf("checksum mismatch")
	}
	return nil
}
