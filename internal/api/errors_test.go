package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "nil error", err: nil, expectedStatus: http.StatusInternalServerError},
		{name: "missing file", err: ErrMissingFile, expectedStatus: http.StatusBadRequest},
		{name: "not pdf", err: domain.ErrNotPDF, expectedStatus: http.StatusBadRequest},
		{name: "wrapped too large", err: fmt.Errorf("upload: %w", domain.ErrFileTooLarge), expectedStatus: http.StatusBadRequest},
		{name: "empty file", err: domain.ErrEmptyFile, expectedStatus: http.StatusBadRequest},
		{name: "unreadable", err: domain.ErrUnreadablePDF, expectedStatus: http.StatusBadRequest},
		{name: "no text", err: domain.ErrNoTextContent, expectedStatus: http.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, expectedStatus: http.StatusBadRequest},
		{name: "unknown", err: errors.New("disk on fire"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{name: "nil error", err: nil, expectedMessage: "Error processing PDF"},
		{name: "missing file", err: fmt.Errorf("%w: http: no such file", ErrMissingFile), expectedMessage: "No file provided"},
		{name: "not pdf", err: domain.ErrNotPDF, expectedMessage: "Only PDF files are allowed"},
		{name: "too large", err: domain.ErrFileTooLarge, expectedMessage: "File size must be less than 10MB"},
		{name: "empty file", err: domain.ErrEmptyFile, expectedMessage: "Invalid or unreadable PDF file"},
		{name: "unreadable", err: domain.ErrUnreadablePDF, expectedMessage: "Invalid or unreadable PDF file"},
		{name: "no text", err: domain.ErrNoTextContent, expectedMessage: "No text content found in PDF"},
		{
			name:            "unknown error with secrets",
			err:             errors.New("dial https://generativelanguage.googleapis.com?key=secret failed"),
			expectedMessage: "Error processing PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMessage, GetSafeErrorMessage(tt.err, 10<<20))
		})
	}
}

func TestFileTooLargeMessage(t *testing.T) {
	assert.Equal(t, "File size must be less than 10MB", FileTooLargeMessage(10<<20))
	assert.Equal(t, "File size must be less than 1MB", FileTooLargeMessage(1<<20))
	assert.Equal(t, "File size must be less than 1500 bytes", FileTooLargeMessage(1500))
}
