// Package pdftext extracts plain text from PDF documents held in memory.
// It wraps github.com/ledongthuc/pdf and converts its failures, including
// panics raised on malformed input, into domain.ErrUnreadablePDF.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/phrazzld/pdfcards/internal/domain"
)

// Extractor reads PDF bytes and returns their text content.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// IsPDFFilename reports whether name carries a .pdf extension, ignoring case.
func IsPDFFilename(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// ExtractText parses data as a PDF and returns the text of every page joined
// by newlines, with surrounding whitespace trimmed. Pages whose text cannot
// be decoded are skipped. The returned error wraps domain.ErrUnreadablePDF
// when the document itself cannot be opened.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (doc *domain.Document, err error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: parser panic: %v", domain.ErrUnreadablePDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadablePDF, err)
	}

	pageCount := reader.NumPage()
	pages := make([]string, 0, pageCount)

	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.WarnContext(ctx, "skipping page with unreadable text",
				"page", i,
				"error", err)
			continue
		}

		pages = append(pages, text)
	}

	doc = &domain.Document{
		Text:      strings.TrimSpace(strings.Join(pages, "\n")),
		PageCount: pageCount,
	}

	e.logger.DebugContext(ctx, "extracted text from PDF",
		"page_count", doc.PageCount,
		"text_length", doc.TextLength())

	return doc, nil
}
