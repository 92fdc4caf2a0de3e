package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	MinSize     = 128
	MaxSize     = 1024
	DefaultSize = 256
)

// QRService renders share codes that point at public creation pages.
type QRService struct {
	baseURL string // e.g. "https://galbi.app/creations/"
}

func NewQRService(baseURL string) *QRService {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &QRService{
		baseURL: baseURL,
	}
}

// ShareURL is the link encoded in a creation's QR code.
func (s *QRService) ShareURL(creationID uint) string {
	return fmt.Sprintf("%s%d", s.baseURL, creationID)
}

// CreationQRCode returns a PNG QR code for the creation. size is clamped to
// MinSize..MaxSize pixels.
func (s *QRService) CreationQRCode(creationID uint, size int) ([]byte, error) {
	png, err := qrcode.Encode(s.ShareURL(creationID), qrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}

func ClampSize(size int) int {
	switch {
	case size == 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}
