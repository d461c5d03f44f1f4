// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrNotPDF is returned when an uploaded file is not a PDF document.
	ErrNotPDF = errors.New("file is not a PDF")

	// ErrEmptyFile is returned when an uploaded file has no content.
	ErrEmptyFile = errors.New("file is empty")

	// ErrFileTooLarge is returned when an uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnreadablePDF is returned when a PDF cannot be parsed.
	ErrUnreadablePDF = errors.New("unable to read PDF")

	// ErrNoTextContent is returned when a PDF contains no extractable text.
	ErrNoTextContent = errors.New("no text content found in PDF")
)
