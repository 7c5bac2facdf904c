// Package ingestion turns uploaded resumes and fetched job pages into clean
// plain text for scoring.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/fetch"
)

// Media types understood by MediaExtractor.
const (
	MediaTypePDF      = "application/pdf"
	MediaTypeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDOC      = "application/msword"
	MediaTypeHTML     = "text/html"
	MediaTypePlain    = "text/plain"
	MediaTypeMarkdown = "text/markdown"
)

var (
	// ErrUnsupportedMediaType is returned for formats with no extractor,
	// including images (no OCR) and legacy .doc files.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrTextTooShort is returned when extracted text is below the usable minimum.
	ErrTextTooShort = errors.New("could not extract enough text from resume")
)

// TextExtractor converts raw document bytes of a given media type to text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mediaType string) (string, error)
}

// MediaExtractor dispatches on media type to the built-in format readers.
type MediaExtractor struct{}

// NewMediaExtractor returns the default extractor.
func NewMediaExtractor() *MediaExtractor {
	return &MediaExtractor{}
}

// Extract returns the cleaned text of data. Parameters on the media type
// (charset and so on) are ignored.
func (MediaExtractor) Extract(ctx context.Context, data []byte, mediaType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mt := BaseMediaType(mediaType)

	var (
		text string
		err  error
	)
	switch {
	case mt == MediaTypePDF:
		text, err = extractPDF(data)
	case mt == MediaTypeDOCX:
		text, err = extractDOCX(data)
	case mt == MediaTypeHTML:
		text, err = fetch.ExtractMainText(string(data), fetch.DefaultTextSelectors())
	case mt == MediaTypePlain, mt == MediaTypeMarkdown:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", mt, err)
	}
	return CleanText(text), nil
}

// BaseMediaType lowercases a media type and strips its parameters.
func BaseMediaType(mediaType string) string {
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		return mt
	}
	base, _, _ := strings.Cut(mediaType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
