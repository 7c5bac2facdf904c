package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX assembles a minimal Word archive with one paragraph per line.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	doc := `<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestMediaExtractor_Extract(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		mediaType string
		want      string
	}{
		{
			name:      "plain text",
			data:      []byte("Jane Doe\r\nGo   engineer"),
			mediaType: MediaTypePlain,
			want:      "Jane Doe\nGo engineer",
		},
		{
			name:      "markdown with charset parameter",
			data:      []byte("# Jane Doe\n- Go"),
			mediaType: "text/markdown; charset=utf-8",
			want:      "# Jane Doe\n- Go",
		},
		{
			name:      "html body text",
			data:      []byte(`<html><body><script>x()</script><main><p>Jane Doe</p><p>Go &amp; SQL</p></main></body></html>`),
			mediaType: "TEXT/HTML",
			want:      "Jane Doe\nGo & SQL",
		},
		{
			name:      "docx paragraphs and entities",
			data:      buildDOCX(t, "Jane Doe", "R&amp;D lead"),
			mediaType: MediaTypeDOCX,
			want:      "Jane Doe\nR&D lead",
		},
	}

	ex := NewMediaExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ex.Extract(context.Background(), tt.data, tt.mediaType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaExtractor_Unsupported(t *testing.T) {
	ex := NewMediaExtractor()
	for _, mt := range []string{"image/png", "image/jpeg", MediaTypeDOC, "application/zip", ""} {
		t.Run(mt, func(t *testing.T) {
			_, err := ex.Extract(context.Background(), []byte("data"), mt)
			assert.ErrorIs(t, err, ErrUnsupportedMediaType)
		})
	}
}

func TestMediaExtractor_MalformedDocuments(t *testing.T) {
	ex := NewMediaExtractor()

	_, err := ex.Extract(context.Background(), []byte("%PDF-1.4 garbage"), MediaTypePDF)
	assert.Error(t, err)

	_, err = ex.Extract(context.Background(), []byte("not a zip"), MediaTypeDOCX)
	assert.Error(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = ex.Extract(context.Background(), buf.Bytes(), MediaTypeDOCX)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestMediaExtractor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMediaExtractor().Extract(ctx, []byte("text"), MediaTypePlain)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseMediaType(t *testing.T) {
	assert.Equal(t, "application/pdf", BaseMediaType("Application/PDF"))
	assert.Equal(t, "text/plain", BaseMediaType("text/plain; charset=utf-8"))
	assert.Equal(t, "", BaseMediaType(""))
}
