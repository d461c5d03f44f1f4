package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/pdfcards/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication_WithoutAPIKey(t *testing.T) {
	app := newTestApp(t)

	assert.Nil(t, app.generator)
	assert.NotNil(t, app.extractor)
	assert.False(t, app.flashcardService.AIConfigured())
}

func TestNewApplication_WithAPIKey(t *testing.T) {
	cfg := config.Defaults()
	cfg.LLM.GeminiAPIKey = "test-key"

	app, err := newApplication(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.NotNil(t, app.generator)
	assert.True(t, app.flashcardService.AIConfigured())
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	app := newTestApp(t)
	app.config.Server.Port = 9123
	app.config.Server.ReadTimeoutSeconds = 7
	app.config.Server.WriteTimeoutSeconds = 11

	server := app.newHTTPServer(app.setupRouter())

	assert.Equal(t, ":9123", server.Addr)
	assert.Equal(t, 7*time.Second, server.ReadTimeout)
	assert.Equal(t, 11*time.Second, server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, server.ReadHeaderTimeout)
}

func TestStartHTTPServer_ShutsDownOnCancel(t *testing.T) {
	app := newTestApp(t)
	app.config.Server.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, app.setupRouter())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
