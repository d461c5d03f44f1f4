package service

import (
	"fmt"
)

// ServiceError wraps unexpected failures from the flashcard service with the
// operation that produced them. Expected conditions are reported with the
// domain sentinel errors instead.
type ServiceError struct {
	// Operation is the operation that failed, e.g. "extract_text".
	Operation string
	// Message is a human-readable description of the failure.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flashcard service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("flashcard service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError, or returns nil when err is nil.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
