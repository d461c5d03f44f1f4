package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/pdfcards/internal/config"
	"github.com/phrazzld/pdfcards/internal/generation"
	"github.com/phrazzld/pdfcards/internal/platform/gemini"
	"github.com/phrazzld/pdfcards/internal/platform/pdftext"
	"github.com/phrazzld/pdfcards/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	extractor        *pdftext.Extractor
	generator        generation.Generator
	flashcardService service.FlashcardService
}

// newApplication creates an application with all dependencies initialized.
// The Gemini generator is only built when an API key is configured; without
// one the service answers every upload with mock flashcards.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.extractor = pdftext.NewExtractor(logger.With("component", "pdf_extractor"))

	if cfg.LLM.Configured() {
		gen, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		app.generator = gen
		logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)
	} else {
		logger.Warn("No Gemini API key configured, mock flashcards will be served")
	}

	var err error
	app.flashcardService, err = service.NewFlashcardService(
		app.extractor,
		app.generator,
		cfg.Upload,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
