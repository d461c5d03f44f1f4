package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/phrazzld/pdfcards/internal/generation"
)

// ParseFlashcards validates raw model output and converts it into flashcards.
//
// The output must be a JSON array whose every element is an object with
// string "question" and "answer" keys. Markdown code fences are stripped,
// and when the array is surrounded by prose the first balanced array of
// objects is used.
// Blank questions or answers, and empty arrays, are rejected. When limit is
// positive the result is truncated to limit cards.
//
// All errors wrap generation.ErrInvalidResponse.
func ParseFlashcards(raw string, limit int) ([]domain.Flashcard, error) {
	content := stripCodeFences(raw)
	if content == "" {
		return nil, fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		array := findJSONArray(content)
		if array == "" {
			return nil, fmt.Errorf("%w: response is not a JSON array: %v", generation.ErrInvalidResponse, err)
		}
		if err2 := json.Unmarshal([]byte(array), &items); err2 != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON array: %v (original error: %v)",
				generation.ErrInvalidResponse, err2, err)
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no flashcards in response", generation.ErrInvalidResponse)
	}

	cards := make([]domain.Flashcard, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: flashcard %d is not an object", generation.ErrInvalidResponse, i)
		}

		question, err := stringField(fields, "question")
		if err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v", generation.ErrInvalidResponse, i, err)
		}

		answer, err := stringField(fields, "answer")
		if err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v", generation.ErrInvalidResponse, i, err)
		}

		card, err := domain.NewFlashcard(question, answer)
		if err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v", generation.ErrInvalidResponse, i, err)
		}

		cards = append(cards, card)
	}

	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}

	return cards, nil
}

// stringField returns fields[key] decoded as a JSON string.
func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %q key", key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%q must be a string", key)
	}

	return s, nil
}

// stripCodeFences removes a leading ``` or ```json fence line and a trailing
// ``` fence.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// findJSONArray returns the first balanced [...] span in s that decodes as a
// non-empty array of objects. Bracketed prose such as "[5]" is skipped. When
// no span qualifies the first balanced span is returned so the caller can
// report why it is invalid, and "" when there is none.
func findJSONArray(s string) string {
	first := ""
	for i := 0; i < len(s); i++ {
		if s[i] != '[' {
			continue
		}

		candidate := balancedArrayAt(s, i)
		if candidate == "" {
			continue
		}
		if first == "" {
			first = candidate
		}

		var objects []map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &objects); err == nil && len(objects) > 0 {
			return candidate
		}
	}

	return first
}

// balancedArrayAt returns the balanced [...] span opening at s[start],
// ignoring brackets inside JSON strings. It returns "" when the span is
// never closed.
func balancedArrayAt(s string, start int) string {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
