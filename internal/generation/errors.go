package generation

import "errors"

// Errors returned by Generator implementations. Callers match them with
// errors.Is; implementations wrap them with call-specific detail.
var (
	// ErrEmptyText is returned when there is no document text to send.
	ErrEmptyText = errors.New("document text cannot be empty")

	// ErrGenerationFailed is returned when the model rejects the request outright.
	ErrGenerationFailed = errors.New("flashcard generation failed")

	// ErrInvalidResponse is returned when model output is not a well-formed flashcard list.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model refuses the input on safety grounds.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned when the model call failed and retries were exhausted.
	ErrTransientFailure = errors.New("transient error during flashcard generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
