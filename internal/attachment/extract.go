// Package attachment extracts plain text from uploaded candidate documents.
package attachment

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"applykit/internal/domain"
)

// ExtractText pulls readable text from an uploaded attachment. PDF, DOCX and
// plain-text files are supported; anything else is rejected with
// domain.ErrUnsupportedAttachment so the handler can answer 400.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt", ".md", ".text":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedAttachment, filepath.Ext(filename))
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("reading docx: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("reading docx: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: docx has no word/document.xml", domain.ErrUnsupportedAttachment)
	}

	// Paragraphs and tabs become whitespace, then all markup is stripped.
	text := strings.ReplaceAll(string(docXML), "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = tagPattern.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlinePattern = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = spacePattern.ReplaceAllString(s, " ")
	s = newlinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
