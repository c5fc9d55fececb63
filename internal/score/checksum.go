package score

import (
	"encoding/json"
	"strconv"

	"github.com/zeebo/xxh3"
)

// salt keys the checksum so a casual editor can't just recompute it
// from the visible fields. Obscurity, not security.
const salt = "bj_game_v1_2025"

// checksum hashes a canonical subset of the record's fields plus the
// salt. History entries contribute only their count, so display-level
// details can be reformatted without invalidating stored data.
func checksum(r Record) string {
	canonical, err := json.Marshal(struct {
		MatchCount   int `json:"matchCount"`
		BestScore    int `json:"bestScore"`
		TotalGames   int `json:"totalGames"`
		TotalMatches int `json:"totalMatches"`
		HistoryCount int `json:"historyCount"`
	}{
		MatchCount:   r.CurrentScore.MatchCount,
		BestScore:    r.BestScore,
		TotalGames:   r.TotalGames,
		TotalMatches: r.TotalMatches,
		HistoryCount: len(r.ScoreHistory),
	})
	if err != nil {
		// Marshalling a struct of ints cannot fail.
		panic(err)
	}
	h := xxh3.Hash(append(canonical, salt...))
	return strconv.FormatUint(h, 36)
}

// verifyChecksum reports whether the stored checksum matches the
// record's fields.
func verifyChecksum(r Record) bool {
	return r.Checksum != "" && r.Checksum == checksum(r)
}
