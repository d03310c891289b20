package qrcode

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

// ShareLink is the public page where respondents fill in a form.
func ShareLink(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/form/" + slug
}

// PNG encodes content as a square QR code image of size pixels. size is
// clamped to [MinSize, MaxSize]; zero means DefaultSize.
func PNG(content string, size int) ([]byte, error) {
	switch {
	case size == 0:
		size = DefaultSize
	case size < MinSize:
		size = MinSize
	case size > MaxSize:
		size = MaxSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
