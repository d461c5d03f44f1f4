package api

import (
	"github.com/phrazzld/pdfcards/internal/domain"
)

// Response messages for successful requests.
const (
	rootMessage    = "AI Flashcard Generator API is running!"
	successMessage = "Flashcards generated successfully!"
)

// API key status values reported by the health endpoint.
const (
	apiKeyConfigured    = "configured"
	apiKeyNotConfigured = "not_configured"
)

// UploadRequest is the parsed form of a POST /upload-pdf request.
type UploadRequest struct {
	Filename string
	Data     []byte
	// NumCards is nil when the field was absent or not an integer.
	NumCards *int
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	AIConfigured bool   `json:"ai_configured"`
	APIKeyStatus string `json:"api_key_status"`
}

// UploadResponse is returned by a successful POST /upload-pdf.
type UploadResponse struct {
	Message        string             `json:"message"`
	Filename       string             `json:"filename"`
	TextLength     int                `json:"text_length"`
	PageCount      int                `json:"page_count"`
	Flashcards     []domain.Flashcard `json:"flashcards"`
	AIUsed         bool               `json:"ai_used"`
	FallbackReason string             `json:"fallback_reason,omitempty"`
}
