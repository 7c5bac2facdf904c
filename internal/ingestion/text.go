package ingestion

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	innerSpaces = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings and whitespace while keeping line
// structure: headings and bullets stay on their own lines and at most one
// blank line separates blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, " ")
	}
	content = strings.ReplaceAll(content, "\x00", "")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	// Bullets keep a two-space indent per nesting level.
	if isBulletLine(trimmed) {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		return strings.Repeat(" ", indent) + innerSpaces.ReplaceAllString(trimmed, " ")
	}
	return innerSpaces.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	for _, b := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, b) {
			return true
		}
	}
	return false
}

// RequireUsableText returns ErrTextTooShort unless text carries at least
// minChars characters after trimming surrounding whitespace.
func RequireUsableText(text string, minChars int) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minChars {
		return fmt.Errorf("%w: %d characters, need %d", ErrTextTooShort, n, minChars)
	}
	return nil
}

// IngestFromFile reads a document from disk, extracts its text with ex and
// returns the cleaned text with metadata.
func IngestFromFile(ctx context.Context, ex TextExtractor, path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	mediaType := DetectMediaType(path, data)
	text, err := ex.Extract(ctx, data, mediaType)
	if err != nil {
		return "", nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	meta := NewMetadata(text, "")
	meta.Path = path
	meta.MediaType = mediaType
	meta.Bytes = len(data)
	return text, meta, nil
}
