package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/pdfcards/internal/config"
	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/phrazzld/pdfcards/internal/generation"
	"github.com/phrazzld/pdfcards/internal/platform/logger"
	"github.com/phrazzld/pdfcards/internal/platform/pdftext"
	"github.com/phrazzld/pdfcards/internal/redact"
)

// Fallback reasons reported alongside the mock deck.
const (
	// FallbackAINotConfigured means no API key was configured.
	FallbackAINotConfigured = "ai_not_configured"
	// FallbackAIUnavailable means the model call failed.
	FallbackAIUnavailable = "ai_unavailable"
	// FallbackInvalidResponse means the model answered with malformed flashcards.
	FallbackInvalidResponse = "invalid_ai_response"
	// FallbackContentBlocked means the model refused the document.
	FallbackContentBlocked = "content_blocked"
)

// TextExtractor turns raw document bytes into text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (*domain.Document, error)
}

// GenerateRequest is an uploaded document and the number of cards wanted.
type GenerateRequest struct {
	Filename string
	Data     []byte
	// NumCards is nil when the caller did not ask for a count; the
	// configured default applies. Any other value is clamped to the limits.
	NumCards *int
}

// GenerateResult is the outcome of a successful Generate call.
type GenerateResult struct {
	Filename       string             `json:"filename"`
	TextLength     int                `json:"text_length"`
	PageCount      int                `json:"page_count"`
	Flashcards     []domain.Flashcard `json:"flashcards"`
	AIUsed         bool               `json:"ai_used"`
	FallbackReason string             `json:"fallback_reason,omitempty"`
}

// FlashcardService turns uploaded PDFs into flashcards.
type FlashcardService interface {
	// Generate validates the upload, extracts its text and produces flashcards.
	// Model failures never surface as errors; they yield the mock deck.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// ExtractText validates the upload and returns its text without generating cards.
	ExtractText(ctx context.Context, filename string, data []byte) (*domain.Document, error)

	// AIConfigured reports whether a generator is available.
	AIConfigured() bool
}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	extractor TextExtractor
	generator generation.Generator
	limits    config.UploadConfig
	logger    *slog.Logger
}

// NewFlashcardService creates a FlashcardService.
//
// generator may be nil, in which case every request is answered with the mock
// deck. extractor and logger are required.
func NewFlashcardService(
	extractor TextExtractor,
	generator generation.Generator,
	limits config.UploadConfig,
	log *slog.Logger,
) (FlashcardService, error) {
	if extractor == nil {
		return nil, NewServiceError("create_service", "extractor cannot be nil", errors.New("nil dependency"))
	}

	if log == nil {
		return nil, NewServiceError("create_service", "logger cannot be nil", errors.New("nil dependency"))
	}

	if limits.MinNumCards < 1 || limits.MaxNumCards < limits.MinNumCards {
		return nil, NewServiceError("create_service", "invalid card count limits",
			fmt.Errorf("min=%d max=%d", limits.MinNumCards, limits.MaxNumCards))
	}

	return &flashcardServiceImpl{
		extractor: extractor,
		generator: generator,
		limits:    limits,
		logger:    log.With("component", "flashcard_service"),
	}, nil
}

// AIConfigured implements FlashcardService.
func (s *flashcardServiceImpl) AIConfigured() bool {
	return s.generator != nil
}

// ExtractText implements FlashcardService.
func (s *flashcardServiceImpl) ExtractText(
	ctx context.Context,
	filename string,
	data []byte,
) (*domain.Document, error) {
	log := s.log(ctx)

	if !pdftext.IsPDFFilename(filename) {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotPDF, filename)
	}

	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	if limit := s.limits.MaxFileSizeBytes; limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileTooLarge, len(data), limit)
	}

	doc, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, NewServiceError("extract_text", "extraction interrupted", ctxErr)
		}

		log.WarnContext(ctx, "PDF text extraction failed",
			"error", redact.Error(err),
			"size_bytes", len(data))

		if errors.Is(err, domain.ErrUnreadablePDF) || errors.Is(err, domain.ErrEmptyFile) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadablePDF, err)
	}

	if !doc.HasText() {
		return nil, domain.ErrNoTextContent
	}

	log.InfoContext(ctx, "Extracted text from PDF",
		"page_count", doc.PageCount,
		"text_length", doc.TextLength())

	return doc, nil
}

// Generate implements FlashcardService.
func (s *flashcardServiceImpl) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	log := s.log(ctx)

	doc, err := s.ExtractText(ctx, req.Filename, req.Data)
	if err != nil {
		return nil, err
	}

	numCards := s.cardCount(req.NumCards)

	result := &GenerateResult{
		Filename:   req.Filename,
		TextLength: doc.TextLength(),
		PageCount:  doc.PageCount,
	}

	if s.generator == nil {
		log.InfoContext(ctx, "No generator configured, serving mock flashcards")
		s.useMockDeck(result, FallbackAINotConfigured)
		return result, nil
	}

	cards, err := s.generator.GenerateFlashcards(ctx, strings.TrimSpace(doc.Text), numCards)
	if err != nil {
		reason := fallbackReason(err)
		log.WarnContext(ctx, "Flashcard generation failed, serving mock flashcards",
			"error", redact.Error(err),
			"fallback_reason", reason)
		s.useMockDeck(result, reason)
		return result, nil
	}

	if len(cards) == 0 {
		log.WarnContext(ctx, "Generator returned no flashcards, serving mock flashcards")
		s.useMockDeck(result, FallbackInvalidResponse)
		return result, nil
	}

	if len(cards) > numCards {
		cards = cards[:numCards]
	}

	result.Flashcards = cards
	result.AIUsed = true

	log.InfoContext(ctx, "Generated flashcards",
		"card_count", len(cards),
		"requested", numCards)

	return result, nil
}

// cardCount resolves the requested count against the configured limits.
func (s *flashcardServiceImpl) cardCount(requested *int) int {
	n := s.limits.DefaultNumCards
	if requested != nil {
		n = *requested
	}
	return domain.ClampCardCount(n, s.limits.MinNumCards, s.limits.MaxNumCards)
}

func (s *flashcardServiceImpl) useMockDeck(result *GenerateResult, reason string) {
	result.Flashcards = domain.MockFlashcards()
	result.AIUsed = false
	result.FallbackReason = reason
}

func (s *flashcardServiceImpl) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContextOrDefault(ctx, nil); l != nil {
		return l.With("component", "flashcard_service")
	}
	return s.logger
}

// fallbackReason maps a generator error to the reason reported to clients.
func fallbackReason(err error) string {
	switch {
	case errors.Is(err, generation.ErrContentBlocked):
		return FallbackContentBlocked
	case errors.Is(err, generation.ErrInvalidResponse):
		return FallbackInvalidResponse
	default:
		return FallbackAIUnavailable
	}
}
