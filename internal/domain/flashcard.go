package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Card count bounds applied to every generation request.
const (
	DefaultCardCount = 5
	MinCardCount     = 1
	MaxCardCount     = 20
)

// Flashcard-specific validation errors
var (
	// ErrEmptyQuestion is returned when a flashcard has a blank question.
	ErrEmptyQuestion = errors.New("flashcard question cannot be empty")

	// ErrEmptyAnswer is returned when a flashcard has a blank answer.
	ErrEmptyAnswer = errors.New("flashcard answer cannot be empty")
)

// Flashcard is a single question/answer pair returned to the client.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewFlashcard creates a Flashcard from the given question and answer,
// trimming surrounding whitespace. Returns an error if validation fails.
func NewFlashcard(question, answer string) (Flashcard, error) {
	card := Flashcard{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks that both sides of the card carry text.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyQuestion)
	}

	if strings.TrimSpace(f.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyAnswer)
	}

	return nil
}

// mockFlashcards is the fixed fallback deck.
var mockFlashcards = []Flashcard{
	{
		Question: "What is the main topic of this document?",
		Answer:   "This appears to be a study material or textbook content.",
	},
	{
		Question: "How many pages does this document have?",
		Answer:   "The document contains multiple pages of content.",
	},
	{
		Question: "What type of content is this?",
		Answer:   "This appears to be educational or academic content.",
	},
	{
		Question: "What should you focus on when studying this material?",
		Answer:   "Focus on understanding the key concepts and main ideas presented.",
	},
	{
		Question: "How can you best learn from this content?",
		Answer:   "Create your own notes, practice with flashcards, and review regularly.",
	},
}

// MockFlashcards returns a fresh copy of the fallback deck. The deck always
// holds the same five cards regardless of how many were requested.
func MockFlashcards() []Flashcard {
	cards := make([]Flashcard, len(mockFlashcards))
	copy(cards, mockFlashcards)
	return cards
}

// ClampCardCount bounds n to [lo, hi].
func ClampCardCount(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
