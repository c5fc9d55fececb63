package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode renders a transport payload as a PNG QR image. The lowest
// error-correction level maximizes capacity, which matters once the
// history fills up.
func QRCode(payload []byte, size int) ([]byte, error) {
	png, err := qrcode.Encode(string(payload), qrcode.Low, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
