package gemini

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
	"unicode/utf8"

	"github.com/phrazzld/pdfcards/internal/generation"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// truncationSuffix marks text that was cut to fit the input limit.
const truncationSuffix = "..."

// loadPromptTemplate parses the template at path, or the embedded default
// when path is empty.
func loadPromptTemplate(path string) (*template.Template, error) {
	content := defaultPromptTemplate
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template: %v",
				generation.ErrInvalidConfig, err)
		}
		content = string(b)
	}

	tmpl, err := template.New("flashcards").Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	return tmpl, nil
}

// renderPrompt executes tmpl with the document text and card count.
func renderPrompt(tmpl *template.Template, text string, numCards int) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Text: text, NumCards: numCards}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// truncateText cuts text to at most maxChars characters and appends
// truncationSuffix when anything was removed. maxChars <= 0 disables the limit.
func truncateText(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text, false
	}

	runes := []rune(text)
	return string(runes[:maxChars]) + truncationSuffix, true
}
