package service

import (
	"context"

	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTextExtractor mocks the TextExtractor interface
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, data []byte) (*domain.Document, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// MockGenerator mocks the generation.Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateFlashcards(
	ctx context.Context,
	text string,
	numCards int,
) ([]domain.Flashcard, error) {
	args := m.Called(ctx, text, numCards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}
