package main

import (
	"fmt"

	"github.com/phrazzld/pdfcards/internal/config"
)

// loadAppConfig loads the server configuration from the environment, an
// optional .env file and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
