// Package generation defines the port between the application core and
// external AI/LLM services. The Generator interface turns extracted document
// text into flashcards; the Gemini adapter in internal/platform/gemini is the
// production implementation.
package generation
