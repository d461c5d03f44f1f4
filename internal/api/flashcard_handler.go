package api

import (
	"net/http"

	"github.com/phrazzld/pdfcards/internal/api/shared"
	"github.com/phrazzld/pdfcards/internal/platform/logger"
	"github.com/phrazzld/pdfcards/internal/service"
)

// FlashcardHandler serves the root, health and PDF upload endpoints.
type FlashcardHandler struct {
	service     service.FlashcardService
	maxFileSize int64
}

// NewFlashcardHandler creates a FlashcardHandler. maxFileSize bounds the size
// of an uploaded file in bytes.
func NewFlashcardHandler(svc service.FlashcardService, maxFileSize int64) *FlashcardHandler {
	return &FlashcardHandler{
		service:     svc,
		maxFileSize: maxFileSize,
	}
}

// Root handles GET / requests.
func (h *FlashcardHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{Message: rootMessage})
}

// Health handles GET /health requests.
func (h *FlashcardHandler) Health(w http.ResponseWriter, r *http.Request) {
	configured := h.service.AIConfigured()

	status := apiKeyNotConfigured
	if configured {
		status = apiKeyConfigured
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:       "healthy",
		AIConfigured: configured,
		APIKeyStatus: status,
	})
}

// UploadPDF handles POST /upload-pdf requests.
func (h *FlashcardHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, err := parseUploadRequest(w, r, h.maxFileSize)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.InfoContext(r.Context(), "Processing PDF upload",
		"size_bytes", len(req.Data),
		"num_cards", req.NumCards)

	result, err := h.service.Generate(r.Context(), service.GenerateRequest{
		Filename: req.Filename,
		Data:     req.Data,
		NumCards: req.NumCards,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UploadResponse{
		Message:        successMessage,
		Filename:       result.Filename,
		TextLength:     result.TextLength,
		PageCount:      result.PageCount,
		Flashcards:     result.Flashcards,
		AIUsed:         result.AIUsed,
		FallbackReason: result.FallbackReason,
	})
}

func (h *FlashcardHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err, h.maxFileSize),
		err)
}
