package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// compressedPrefix tags payloads that were deflated before encoding.
// Decoders detect the prefix and decompress before JSON parsing.
const compressedPrefix = "LZ:"

// RecommendedMaxBytes is the payload size above which QR scanning gets
// unreliable.
const RecommendedMaxBytes = 2000

// EncodeTransport serializes the envelope for transfer. When compress
// is true the JSON is deflated and base64-encoded under the LZ: prefix,
// but only if that actually comes out smaller; tiny payloads can grow
// under compression.
func EncodeTransport(env Envelope, compress bool) ([]byte, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	if !compress {
		return raw, nil
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress envelope: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress envelope: %w", err)
	}

	encoded := compressedPrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes())
	if len(encoded) >= len(raw) {
		return raw, nil
	}
	return []byte(encoded), nil
}

// decodeTransport undoes EncodeTransport: payloads under the LZ:
// prefix are base64-decoded and inflated, everything else is passed
// through as raw JSON.
func decodeTransport(data []byte) ([]byte, error) {
	s := string(data)
	if !strings.HasPrefix(s, compressedPrefix) {
		return data, nil
	}

	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(s, compressedPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to decode compressed payload: %w", err)
	}
	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return raw, nil
}
