// Package extract converts uploaded documents to plain text before they
// reach the generation gateway.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extracts plain text from a document
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// PDF-backed TextExtractor
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// reads every page of the PDF and returns its concatenated plain text
func (e *PDFExtractor) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	var sb strings.Builder

	if _, err := io.Copy(&sb, content); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}

	text := strings.TrimSpace(sb.String())

	if text == "" {
		return "", fmt.Errorf("document contains no extractable text")
	}

	return text, nil
}
