package gemini

import (
	"testing"

	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/phrazzld/pdfcards/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlashcards(t *testing.T) {
	t.Parallel()

	twoCards := []domain.Flashcard{
		{Question: "What is Go?", Answer: "A programming language."},
		{Question: "Who designed Go?", Answer: "Griesemer, Pike and Thompson."},
	}

	tests := []struct {
		name  string
		raw   string
		limit int
		want  []domain.Flashcard
	}{
		{
			name: "bare array",
			raw: `[{"question":"What is Go?","answer":"A programming language."},` +
				`{"question":"Who designed Go?","answer":"Griesemer, Pike and Thompson."}]`,
			want: twoCards,
		},
		{
			name: "json code fence",
			raw: "```json\n[{\"question\":\"What is Go?\",\"answer\":\"A programming language.\"}," +
				"{\"question\":\"Who designed Go?\",\"answer\":\"Griesemer, Pike and Thompson.\"}]\n```",
			want: twoCards,
		},
		{
			name: "plain code fence",
			raw:  "```\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```",
			want: []domain.Flashcard{{Question: "Q", Answer: "A"}},
		},
		{
			name: "array surrounded by prose",
			raw:  "Here are your cards:\n[{\"question\":\"Q [1]\",\"answer\":\"A ]\"}]\nEnjoy!",
			want: []domain.Flashcard{{Question: "Q [1]", Answer: "A ]"}},
		},
		{
			name: "bracketed prose before array",
			raw:  `Here are [5] cards: [{"question":"Q","answer":"A"}]`,
			want: []domain.Flashcard{{Question: "Q", Answer: "A"}},
		},
		{
			name: "values are trimmed",
			raw:  `[{"question":"  Q  ","answer":"\tA\n"}]`,
			want: []domain.Flashcard{{Question: "Q", Answer: "A"}},
		},
		{
			name: "extra keys are ignored",
			raw:  `[{"question":"Q","answer":"A","hint":"h"}]`,
			want: []domain.Flashcard{{Question: "Q", Answer: "A"}},
		},
		{
			name:  "truncated to limit",
			raw:   `[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"},{"question":"Q3","answer":"A3"}]`,
			limit: 2,
			want:  []domain.Flashcard{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}},
		},
		{
			name:  "fewer cards than limit",
			raw:   `[{"question":"Q1","answer":"A1"}]`,
			limit: 5,
			want:  []domain.Flashcard{{Question: "Q1", Answer: "A1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFlashcards(tt.raw, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlashcards_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "  \n "},
		{name: "not json", raw: "I could not generate flashcards."},
		{name: "object instead of array", raw: `{"question":"Q","answer":"A"}`},
		{name: "empty array", raw: `[]`},
		{name: "element not object", raw: `["Q", "A"]`},
		{name: "null element", raw: `[null]`},
		{name: "missing question", raw: `[{"answer":"A"}]`},
		{name: "missing answer", raw: `[{"question":"Q"}]`},
		{name: "non-string answer", raw: `[{"question":"Q","answer":42}]`},
		{name: "blank question", raw: `[{"question":"   ","answer":"A"}]`},
		{name: "unbalanced array in prose", raw: `cards: [{"question":"Q","answer":"A"}`},
		{name: "one bad card fails all", raw: `[{"question":"Q","answer":"A"},{"question":"","answer":"B"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cards, err := ParseFlashcards(tt.raw, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			assert.Nil(t, cards)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1]", stripCodeFences("```json\n[1]\n```"))
	assert.Equal(t, "[1]", stripCodeFences("```\n[1]\n```"))
	assert.Equal(t, "[1]", stripCodeFences("  [1]  "))
	assert.Equal(t, "[1]", stripCodeFences("```json[1]```"))
}

func TestFindJSONArray(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `[{"question":"Q","answer":"A"}]`,
		findJSONArray(`Here are [5] cards: [{"question":"Q","answer":"A"}]`))
	assert.Equal(t, `[{"q":"a]b"}]`, findJSONArray(`see [note] then [{"q":"a]b"}] done`))
	assert.Equal(t, `[{"k":"v"}]`, findJSONArray(`[[{"k":"v"}]]`))
	assert.Equal(t, `[1,[2]]`, findJSONArray(`x [1,[2]] y [3]`))
	assert.Equal(t, `["a]b"]`, findJSONArray(`text ["a]b"] more`))
	assert.Equal(t, `["a\"]"]`, findJSONArray(`["a\"]"]`))
	assert.Empty(t, findJSONArray(`no array here`))
	assert.Empty(t, findJSONArray(`[unclosed`))
}
