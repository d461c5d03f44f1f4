// Package service contains the flashcard use case: it checks an uploaded
// document, extracts its text, asks the configured generator for flashcards
// and falls back to the fixed mock deck when generation is unavailable.
//
// The service depends on small interfaces (TextExtractor and
// generation.Generator) rather than on the PDF or Gemini adapters, so the HTTP
// server and the CLI share one code path.
package service
