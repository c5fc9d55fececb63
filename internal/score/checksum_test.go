package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksumStable(t *testing.T) {
	rec := DefaultRecord(time.Now())
	assert.Equal(t, checksum(rec), checksum(rec))
	assert.True(t, verifyChecksum(rec))
}

func TestChecksumCoversProtectedFields(t *testing.T) {
	base := DefaultRecord(time.Now())

	mutations := []struct {
		name   string
		mutate func(*Record)
	}{
		{"matchCount", func(r *Record) { r.CurrentScore.MatchCount++ }},
		{"bestScore", func(r *Record) { r.BestScore++ }},
		{"totalGames", func(r *Record) { r.TotalGames++ }},
		{"totalMatches", func(r *Record) { r.TotalMatches++ }},
		{"historyCount", func(r *Record) {
			r.ScoreHistory = append(r.ScoreHistory, HistoryEntry{})
		}},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			rec := base.Copy()
			tt.mutate(&rec)
			assert.NotEqual(t, base.Checksum, checksum(rec), "mutation should change the checksum")
			assert.False(t, verifyChecksum(rec))
		})
	}
}

func TestChecksumIgnoresDisplayFields(t *testing.T) {
	rec := DefaultRecord(time.Now())

	// Cash position and dates are display state, not protected counters.
	rec.CurrentScore.CurrentCash = 5
	rec.CurrentScore.StartDate = rec.CurrentScore.StartDate.Add(-time.Hour)
	assert.True(t, verifyChecksum(rec))
}

func TestVerifyChecksumRejectsEmpty(t *testing.T) {
	rec := DefaultRecord(time.Now())
	rec.Checksum = ""
	assert.False(t, verifyChecksum(rec))
}

func TestBlobCodecRoundTrip(t *testing.T) {
	payload := []byte(`{"currentScore":{"matchCount":3}}`)

	encoded := encodeBlob(payload)
	assert.NotEqual(t, payload, encoded)

	decoded, err := decodeBlob(encoded)
	assert.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestDecodeBlobRejectsGarbage(t *testing.T) {
	_, err := decodeBlob([]byte("!!! not base64 !!!"))
	assert.Error(t, err)
}
