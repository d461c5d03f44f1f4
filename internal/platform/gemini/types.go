package gemini

import (
	"context"

	"google.golang.org/genai"
)

// ContentGenerator is the subset of the genai Models service used by the
// Generator. *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// promptData represents the data passed to the prompt template
type promptData struct {
	Text     string
	NumCards int
}

// flashcardSchema constrains model output to an array of question/answer objects.
var flashcardSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"answer":   {Type: genai.TypeString},
		},
		Required: []string{"question", "answer"},
	},
}
