package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		filename string
		data     []byte
		want     string
	}{
		{"resume.PDF", nil, MediaTypePDF},
		{"resume.docx", nil, MediaTypeDOCX},
		{"resume.doc", nil, MediaTypeDOC},
		{"posting.htm", nil, MediaTypeHTML},
		{"notes.md", nil, MediaTypeMarkdown},
		{"resume", []byte("Jane Doe, Go developer"), MediaTypePlain},
		{"resume", []byte("%PDF-1.7\n"), MediaTypePDF},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMediaType(tt.filename, tt.data))
		})
	}
}

func TestAcceptUpload(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		mediaType string
		want      bool
	}{
		{"pdf", "cv.pdf", MediaTypePDF, true},
		{"docx", "cv.DOCX", MediaTypeDOCX, true},
		{"doc", "cv.doc", MediaTypeDOC, true},
		{"plain text", "cv.txt", "text/plain; charset=utf-8", true},
		{"octet stream with known extension", "cv.pdf", "application/octet-stream", true},
		{"mismatched type", "cv.pdf", MediaTypeDOCX, false},
		{"image", "cv.png", "image/png", false},
		{"pdf type with image extension", "cv.png", MediaTypePDF, false},
		{"no extension", "cv", MediaTypePDF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptUpload(tt.filename, tt.mediaType))
		})
	}
}

func TestUploadMediaType(t *testing.T) {
	assert.Equal(t, MediaTypePDF, UploadMediaType("cv.pdf", "application/octet-stream"))
	assert.Equal(t, MediaTypeDOCX, UploadMediaType("cv.docx", ""))
	assert.Equal(t, MediaTypePlain, UploadMediaType("cv.txt", "text/plain; charset=utf-8"))
}
