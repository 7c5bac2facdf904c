package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxDocumentXML bounds the decompressed size of word/document.xml.
const maxDocumentXML = 32 << 20

var xmlTag = regexp.MustCompile(`<[^>]+>`)

func extractPDF(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed cross reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer func() { _ = rc.Close() }()

		doc, err := io.ReadAll(io.LimitReader(rc, maxDocumentXML))
		if err != nil {
			return "", err
		}
		return docxText(string(doc)), nil
	}
	return "", errors.New("no word/document.xml in archive")
}

// docxText maps paragraph and break markup to newlines, then drops the
// remaining tags.
func docxText(doc string) string {
	r := strings.NewReplacer(
		"</w:p>", "\n",
		"<w:br/>", "\n",
		"<w:tab/>", "\t",
	)
	doc = r.Replace(doc)
	doc = xmlTag.ReplaceAllString(doc, "")
	return html.UnescapeString(doc)
}
