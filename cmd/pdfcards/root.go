package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phrazzld/pdfcards/internal/config"
	"github.com/phrazzld/pdfcards/internal/generation"
	"github.com/phrazzld/pdfcards/internal/platform/gemini"
	"github.com/phrazzld/pdfcards/internal/platform/logger"
	"github.com/phrazzld/pdfcards/internal/platform/pdftext"
	"github.com/phrazzld/pdfcards/internal/service"
	"github.com/spf13/cobra"
)

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	logLevel string
	model    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "pdfcards",
		Short:         "Generate question/answer flashcards from PDF files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (default from config)")
	root.PersistentFlags().StringVar(&opts.model, "model", "", "Gemini model name (default from config)")

	root.AddCommand(generateCmd(opts), extractCmd(opts))
	return root
}

// buildService loads configuration and wires a FlashcardService whose logs go
// to the command's stderr.
func buildService(ctx context.Context, cmd *cobra.Command, opts *globalOptions) (service.FlashcardService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.model != "" {
		cfg.LLM.ModelName = opts.model
	}

	level := cfg.Server.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	var gen generation.Generator
	if cfg.LLM.Configured() {
		g, err := gemini.NewGenerator(ctx, log, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		gen = g
	} else {
		log.Warn("No Gemini API key configured, mock flashcards will be returned")
	}

	svc, err := service.NewFlashcardService(
		pdftext.NewExtractor(log.With("component", "pdf_extractor")),
		gen,
		cfg.Upload,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	return svc, nil
}

// readPDF reads path and returns its base name and contents.
func readPDF(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return filepath.Base(path), data, nil
}
