package ai

import (
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	uerrors "github.com/johnquangdev/meeting-summary/internal/usecase/errors"
)

// TranscriptContentType is the only accepted upload media type
const TranscriptContentType = "text/plain"

// CheckContentType accepts text/plain with or without parameters.
func CheckContentType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.EqualFold(mediaType, TranscriptContentType) {
		return fmt.Errorf("%w: got %q", uerrors.ErrInvalidFileType, contentType)
	}
	return nil
}

// DecodeTranscript turns uploaded bytes into transcript text. The bytes must
// be valid UTF-8; a leading byte order mark is dropped.
func DecodeTranscript(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", uerrors.ErrInvalidEncoding
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", uerrors.ErrInvalidEncoding, err)
	}

	if strings.TrimSpace(string(text)) == "" {
		return "", uerrors.ErrEmptyTranscript
	}
	return string(text), nil
}
