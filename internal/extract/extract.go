package extract

import (
	"bytes"
	"errors"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-matcher/internal/shared/telemetry"
)

// ErrUnreadable means the PDF container could not be opened at all.
var ErrUnreadable = errors.New("unreadable pdf")

var pdfMagic = []byte("%PDF")

// Validate reports whether data is a well-formed PDF with at least one page.
// The magic check is a cheap pre-filter; the parser has the final say.
func Validate(data []byte) bool {
	if len(data) < len(pdfMagic) {
		return false
	}
	if !bytes.EqualFold(data[:len(pdfMagic)], pdfMagic) {
		return false
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	return reader.NumPage() > 0
}

// Extract pulls plain text from a PDF payload, page by page in document
// order, joined by single newlines. Pages that fail to extract are skipped;
// only an unopenable container is an error. An empty result after trimming
// is the caller's no-text condition, not an error here.
func Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", ErrUnreadable
	}

	var parts []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil {
			telemetry.Warn("extract.page_failed", map[string]any{"page": i, "error": err.Error()})
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// pageText isolates the library call so a panic on a corrupt page is
// contained to that page.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = errors.New("page parse panic")
		}
	}()
	return page.GetPlainText(nil)
}
