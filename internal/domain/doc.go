// Package domain contains the core entities of the flashcard generator:
// flashcards, extracted documents and the fixed fallback deck served when
// the language model is unavailable. It has no dependencies on transport or
// infrastructure packages.
package domain
