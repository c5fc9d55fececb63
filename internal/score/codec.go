package score

import (
	"encoding/base64"
	"fmt"
)

// The stored blob is byte-reversed and base64-encoded. Like the
// checksum this deters casual edits in a file browser, nothing more.
// The ledger JSON is pure ASCII so byte reversal is safe.

func encodeBlob(data []byte) []byte {
	reversed := make([]byte, len(data))
	for i, b := range data {
		reversed[len(data)-1-i] = b
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(reversed)))
	base64.StdEncoding.Encode(out, reversed)
	return out
}

func decodeBlob(data []byte) ([]byte, error) {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode score blob: %w", err)
	}
	decoded = decoded[:n]
	out := make([]byte, len(decoded))
	for i, b := range decoded {
		out[len(decoded)-1-i] = b
	}
	return out, nil
}
