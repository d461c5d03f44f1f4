package generation

import (
	"context"

	"github.com/phrazzld/pdfcards/internal/domain"
)

// Generator defines the interface for generating flashcards from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateFlashcards creates up to numCards flashcards from the provided
	// document text. It returns an error (see errors.go) if the model call
	// fails or its output cannot be validated.
	GenerateFlashcards(ctx context.Context, text string, numCards int) ([]domain.Flashcard, error)
}
