package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "  \n\t\n  ", ""},
		{"headings kept", "  # Title\n## Subtitle\nContent here", "# Title\n## Subtitle\nContent here"},
		{"bullets kept", "- Item 1\n- Item 2\n* Item 3", "- Item 1\n- Item 2\n* Item 3"},
		{"nested bullet indent", "- Go\n  - generics", "- Go\n  - generics"},
		{"inner spaces collapsed", "Line    with \t multiple   spaces", "Line with multiple spaces"},
		{"non-breaking space", "Jane Doe", "Jane Doe"},
		{"blank runs capped", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"line endings", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"nul bytes dropped", "Go\x00lang", "Golang"},
		{"invalid utf8", "Go\xffdev", "Go dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Resume   text\n\n\n\n- 5 years   Go"
	assert.Equal(t, CleanText(input), CleanText(input))
	assert.Equal(t, CleanText(input), CleanText(CleanText(input)))
}

func TestRequireUsableText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		min     int
		wantErr bool
	}{
		{"exactly the minimum", "0123456789", 10, false},
		{"surrounding whitespace ignored", "   012345678   ", 10, true},
		{"empty", "", 10, true},
		{"multibyte counts runes", "développeur", 10, false},
		{"zero minimum", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireUsableText(tt.text, tt.min)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTextTooShort)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIngestFromFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\n\n\n\nGo   developer, 5 years"), 0o644))

	text, meta, err := IngestFromFile(context.Background(), NewMediaExtractor(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nGo developer, 5 years", text)
	require.NotNil(t, meta)
	assert.Equal(t, path, meta.Path)
	assert.Equal(t, MediaTypePlain, meta.MediaType)
	assert.Equal(t, ContentHash(text), meta.Hash)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestIngestFromFile_DOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buildDOCX(t, "Jane Doe", "Kubernetes and Go"), 0o644))

	text, meta, err := IngestFromFile(context.Background(), NewMediaExtractor(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nKubernetes and Go", text)
	assert.Equal(t, MediaTypeDOCX, meta.MediaType)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	_, _, err := IngestFromFile(context.Background(), NewMediaExtractor(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.doc")
	require.NoError(t, os.WriteFile(path, []byte{0xd0, 0xcf, 0x11, 0xe0}, 0o644))

	_, _, err := IngestFromFile(context.Background(), NewMediaExtractor(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMediaType))
}
