// Package main implements the entry point for the pdfcards API server, which
// turns uploaded PDFs into question/answer flashcards.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("pdfcards server: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves until shutdown.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"ai_configured", cfg.LLM.Configured())

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
