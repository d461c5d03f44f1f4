package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/phrazzld/pdfcards/internal/platform/pdftext"
)

const (
	// fileField and numCardsField are the multipart form field names.
	fileField     = "file"
	numCardsField = "num_cards"

	// multipartOverhead allows for boundaries and the num_cards field on top
	// of the file itself.
	multipartOverhead = 1 << 20

	// maxMemory is the part of a multipart body kept in memory before
	// spilling to temporary files.
	maxMemory = 32 << 20
)

// parseUploadRequest reads the file and num_cards fields from a multipart
// request body of at most maxFileSize bytes of file content.
func parseUploadRequest(w http.ResponseWriter, r *http.Request, maxFileSize int64) (*UploadRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrFileTooLarge, maxBytesErr.Limit)
		}
		// multipart may flatten the reader error into its own message
		if strings.Contains(err.Error(), "request body too large") {
			return nil, fmt.Errorf("%w: %v", domain.ErrFileTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	defer file.Close()

	// A wrong file type is reported ahead of its size.
	if !pdftext.IsPDFFilename(header.Filename) {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotPDF, header.Filename)
	}

	if header.Size > maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, header.Size)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	req := &UploadRequest{
		Filename: header.Filename,
		Data:     data,
	}
	if n, ok := parseNumCards(r.FormValue(numCardsField)); ok {
		req.NumCards = &n
	}

	return req, nil
}

// parseNumCards returns the integer value of raw. ok is false when raw is
// empty or not an integer.
func parseNumCards(raw string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
