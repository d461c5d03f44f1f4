package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/phrazzld/pdfcards/internal/config"
	"github.com/phrazzld/pdfcards/internal/domain"
	"github.com/phrazzld/pdfcards/internal/generation"
	"github.com/phrazzld/pdfcards/internal/redact"
	"google.golang.org/genai"
)

// Generator implements generation.Generator using Google's Gemini API.
type Generator struct {
	logger         *slog.Logger
	config         config.LLMConfig
	promptTemplate *template.Template
	client         ContentGenerator
	model          string

	// sleep waits between retries; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator backed by a genai client for the Gemini API.
//
// The API key and model name must be set. The prompt template is loaded from
// cfg.PromptTemplatePath when set, otherwise the embedded default is used.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return NewGeneratorWithClient(logger, cfg, client.Models)
}

// NewGeneratorWithClient creates a Generator that sends requests through client.
func NewGeneratorWithClient(logger *slog.Logger, cfg config.LLMConfig, client ContentGenerator) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if client == nil {
		return nil, fmt.Errorf("%w: content client cannot be nil", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	tmpl, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	return &Generator{
		logger:         logger.With("component", "gemini_generator"),
		config:         cfg,
		promptTemplate: tmpl,
		client:         client,
		model:          cfg.ModelName,
		sleep:          sleepContext,
	}, nil
}

// GenerateFlashcards asks the model for numCards flashcards covering text.
func (g *Generator) GenerateFlashcards(ctx context.Context, text string, numCards int) ([]domain.Flashcard, error) {
	if strings.TrimSpace(text) == "" {
		return nil, generation.ErrEmptyText
	}

	// Range limits are the caller's; only a non-positive count is corrected.
	if numCards < 1 {
		numCards = 1
	}

	input, truncated := truncateText(text, g.config.MaxInputChars)
	if truncated {
		g.logger.InfoContext(ctx, "Document text truncated for prompt",
			"max_input_chars", g.config.MaxInputChars)
	}

	prompt, err := renderPrompt(g.promptTemplate, input, numCards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.DebugContext(ctx, "Prompt generated",
		"prompt_length", len(prompt),
		"num_cards", numCards)

	raw, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cards, err := ParseFlashcards(raw, numCards)
	if err != nil {
		g.logger.WarnContext(ctx, "Model output failed validation",
			"error", redact.Error(err),
			"response_length", len(raw))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Flashcards generated",
		"card_count", len(cards),
		"model", g.model)

	return cards, nil
}

// callWithRetry calls the model and retries transient failures with
// exponential backoff and jitter. It returns the raw response text.
func (g *Generator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   flashcardSchema,
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptNum := attempt + 1
		g.logger.InfoContext(ctx, "Making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		text, err := g.callOnce(ctx, contents, genConfig)
		if err == nil {
			return text, nil
		}

		g.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", redact.Error(err))

		if !isTransient(err) {
			return "", err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctxErr)
		}

		lastErr = err
		if attempt == maxRetries {
			break
		}

		delay := g.backoff(attempt)
		g.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		if err := g.sleep(ctx, delay); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		}
	}

	return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
		generation.ErrTransientFailure, maxRetries, lastErr)
}

// callOnce makes a single model request under the configured timeout.
func (g *Generator) callOnce(
	ctx context.Context,
	contents []*genai.Content,
	genConfig *genai.GenerateContentConfig,
) (string, error) {
	if timeout := g.config.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := g.client.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		return "", classifyAPIError(err)
	}

	return responseText(resp)
}

// backoff returns baseDelay * 2^attempt scaled by a jitter factor in [0.5, 1).
func (g *Generator) backoff(attempt int) time.Duration {
	base := g.config.RetryDelay()
	if base <= 0 {
		return 0
	}

	jitter := 0.5 + rand.Float64()*0.5
	return time.Duration(float64(base) * math.Pow(2, float64(attempt)) * jitter)
}

// responseText extracts the text of the first candidate, reporting safety
// blocks and empty output.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}

	return text, nil
}

// classifyAPIError wraps a client error with the matching generation sentinel.
// Client errors other than rate limiting are permanent.
func classifyAPIError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: request cancelled: %v", generation.ErrGenerationFailed, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out: %v", generation.ErrTransientFailure, err)
	}

	if code, ok := apiErrorCode(err); ok {
		if code == http.StatusTooManyRequests || code >= http.StatusInternalServerError {
			return fmt.Errorf("%w: api status %d: %v", generation.ErrTransientFailure, code, err)
		}
		return fmt.Errorf("%w: api status %d: %v", generation.ErrGenerationFailed, code, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}

	return 0, false
}

func isTransient(err error) bool {
	return errors.Is(err, generation.ErrTransientFailure)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
