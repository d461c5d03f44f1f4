package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/pdfcards/internal/domain"
)

// ErrMissingFile is returned when an upload request carries no file part.
var ErrMissingFile = errors.New("no file provided")

// Client-facing error messages.
const (
	msgMissingFile   = "No file provided"
	msgNotPDF        = "Only PDF files are allowed"
	msgUnreadablePDF = "Invalid or unreadable PDF file"
	msgNoTextContent = "No text content found in PDF"
	msgProcessing    = "Error processing PDF"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Problems with the uploaded file are client errors; everything else is a
// server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingFile),
		errors.Is(err, domain.ErrNotPDF),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrUnreadablePDF),
		errors.Is(err, domain.ErrNoTextContent),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err. maxFileSize is
// the configured upload limit used in the file size message.
func GetSafeErrorMessage(err error, maxFileSize int64) string {
	if err == nil {
		return msgProcessing
	}

	switch {
	case errors.Is(err, ErrMissingFile):
		return msgMissingFile

	case errors.Is(err, domain.ErrNotPDF):
		return msgNotPDF

	case errors.Is(err, domain.ErrFileTooLarge):
		return FileTooLargeMessage(maxFileSize)

	case errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrUnreadablePDF):
		return msgUnreadablePDF

	case errors.Is(err, domain.ErrNoTextContent):
		return msgNoTextContent

	default:
		return msgProcessing
	}
}

// FileTooLargeMessage renders the size limit in whole megabytes when
// possible, e.g. "File size must be less than 10MB".
func FileTooLargeMessage(maxFileSize int64) string {
	const mb = 1 << 20
	if maxFileSize > 0 && maxFileSize%mb == 0 {
		return fmt.Sprintf("File size must be less than %dMB", maxFileSize/mb)
	}
	return fmt.Sprintf("File size must be less than %d bytes", maxFileSize)
}
