// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating flashcards from document text.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to Google's external Gemini AI service.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Truncates long documents before they are sent
//   - Requests JSON output constrained by a response schema
//
// 2. Prompt Management:
//   - Ships an embedded default prompt template
//   - Optionally loads a replacement template from disk
//
// 3. Response Processing:
//   - ParseFlashcards tolerates code fences and surrounding prose
//   - Every card is validated; one bad card rejects the whole response
//
// 4. Error Handling:
//   - Retries transient API errors with exponential backoff and jitter
//   - Maps safety blocks and malformed output to generation sentinel errors
package gemini
