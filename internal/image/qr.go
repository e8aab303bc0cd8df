package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload is the string encoded in a print label's QR code.
func QRPayload(designID string) string {
	return "caseprint:design:" + designID
}

// GenerateQRPNG returns PNG bytes of a size×size QR code for payload.
func GenerateQRPNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr: empty payload")
	}
	b, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return b, nil
}

// GenerateQRImage returns the QR code as an image for composition.
func GenerateQRImage(payload string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(payload, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("qr decode: %w", err)
	}
	return img, nil
}
