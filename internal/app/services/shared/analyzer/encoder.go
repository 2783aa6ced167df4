package analyzer

import (
	"encoding/base64"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeImage reads the image at path and returns it base64 encoded with its detected MIME type.
// Any failure yields an empty string and a non-nil error.
func EncodeImage(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", exceptions.ErrMediaFileUnreadable(err, path)
	}
	if len(data) == 0 {
		return "", "", exceptions.ErrMediaFileUnreadable(os.ErrNotExist, path)
	}

	return base64.StdEncoding.EncodeToString(data), detectImageMIMEType(data), nil
}

func detectImageMIMEType(data []byte) string {
	detected := mimetype.Detect(data).String()
	if mediaType, _, found := strings.Cut(detected, ";"); found {
		detected = mediaType
	}
	if !strings.HasPrefix(detected, "image/") {
		return constvars.DefaultImageMIMEType
	}
	return detected
}

func buildDataURL(mimeType, encodedImage string) string {
	if mimeType == "" {
		mimeType = constvars.DefaultImageMIMEType
	}
	return "data:" + mimeType + ";base64," + encodedImage
}
