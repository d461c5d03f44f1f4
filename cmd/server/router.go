package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/pdfcards/internal/api"
	apiMiddleware "github.com/phrazzld/pdfcards/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	handler := api.NewFlashcardHandler(app.flashcardService, app.config.Upload.MaxFileSizeBytes)

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Post("/upload-pdf", handler.UploadPDF)

	return r
}
