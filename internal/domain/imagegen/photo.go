package imagegen

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var dataURIPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=\s]+)$`)

// Photo is a decoded source image.
type Photo struct {
	MimeType string
	Data     []byte
}

// ParsePhoto validates and decodes a data:image/<subtype>;base64,<payload> URI.
func ParsePhoto(dataURI string) (Photo, error) {
	match := dataURIPattern.FindStringSubmatch(strings.TrimSpace(dataURI))
	if match == nil {
		return Photo{}, ErrInvalidPhoto
	}
	payload := strings.Join(strings.Fields(match[2]), "")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Photo{}, fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	if len(data) == 0 {
		return Photo{}, ErrInvalidPhoto
	}
	return Photo{MimeType: strings.ToLower(match[1]), Data: data}, nil
}

// DataURI encodes the photo back into a data URI.
func (p Photo) DataURI() string {
	return EncodeDataURI(p.MimeType, p.Data)
}

// EncodeDataURI wraps raw bytes as data:<mime>;base64,<payload>.
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Extension returns a file extension for an image mime type.
func Extension(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
