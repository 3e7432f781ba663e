// Package qr renders share links as scannable PNG codes.
package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEmptyData rejects encoding an empty payload.
var ErrEmptyData = errors.New("qr data must be a non-empty string")

// Encode renders data as a PNG QR code with medium error correction.
// scale is pixels per module; border 0 removes the quiet zone, any positive
// value keeps the library's standard one.
func Encode(data string, scale, border int) ([]byte, error) {
	if data == "" {
		return nil, ErrEmptyData
	}
	if scale < 1 {
		scale = 1
	}

	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	if border <= 0 {
		code.DisableBorder = true
	}

	png, err := code.PNG(-scale)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}
