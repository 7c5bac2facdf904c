package ingestion

import (
	"net/http"
	"path/filepath"
	"strings"
)

var extensionMediaTypes = map[string]string{
	".pdf":      MediaTypePDF,
	".docx":     MediaTypeDOCX,
	".doc":      MediaTypeDOC,
	".html":     MediaTypeHTML,
	".htm":      MediaTypeHTML,
	".txt":      MediaTypePlain,
	".md":       MediaTypeMarkdown,
	".markdown": MediaTypeMarkdown,
}

// DetectMediaType guesses a file's media type from its extension, falling
// back to content sniffing.
func DetectMediaType(filename string, data []byte) string {
	if mt, ok := extensionMediaTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mt
	}
	return BaseMediaType(http.DetectContentType(data))
}

// uploadTypes pairs each accepted upload extension with the media types a
// client may declare for it.
var uploadTypes = map[string][]string{
	".pdf":  {MediaTypePDF},
	".docx": {MediaTypeDOCX},
	".doc":  {MediaTypeDOC},
	".txt":  {MediaTypePlain},
	".md":   {MediaTypeMarkdown, MediaTypePlain},
}

// AcceptUpload reports whether an uploaded resume is allowed. Both the
// filename extension and the declared media type must agree on a supported
// format. A generic application/octet-stream declaration is accepted when
// the extension is supported.
func AcceptUpload(filename, mediaType string) bool {
	allowed, ok := uploadTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return false
	}
	mt := BaseMediaType(mediaType)
	if mt == "application/octet-stream" || mt == "" {
		return true
	}
	for _, a := range allowed {
		if mt == a {
			return true
		}
	}
	return false
}

// UploadMediaType returns the media type to extract an accepted upload
// with, preferring the extension when the client sent a generic type.
func UploadMediaType(filename, declared string) string {
	mt := BaseMediaType(declared)
	if mt == "" || mt == "application/octet-stream" {
		return extensionMediaTypes[strings.ToLower(filepath.Ext(filename))]
	}
	return mt
}
