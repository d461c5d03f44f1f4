package domain

import (
	"strings"
	"unicode/utf8"
)

// Document is the text extracted from an uploaded PDF.
type Document struct {
	// Text holds the page texts joined by newlines, trimmed.
	Text string `json:"text"`

	// PageCount is the number of pages in the source PDF.
	PageCount int `json:"page_count"`
}

// HasText reports whether the document contains any non-whitespace text.
func (d *Document) HasText() bool {
	return d != nil && strings.TrimSpace(d.Text) != ""
}

// TextLength returns the length of the text in characters, not bytes.
func (d *Document) TextLength() int {
	if d == nil {
		return 0
	}
	return utf8.RuneCountInString(d.Text)
}
