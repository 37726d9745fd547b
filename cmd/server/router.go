package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-flashgen/internal/api"
	apiMiddleware "github.com/phrazzld/scry-flashgen/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.corsHandler().Handler)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	flashcardHandler := api.NewFlashcardHandler(
		app.flashcardService,
		app.config.Generation.DefaultNumCards,
		app.config.Generation.MaxNumCards,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-flashcards", flashcardHandler.GenerateFlashcards)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// corsHandler allows browser clients from the configured origins.
func (app *application) corsHandler() *cors.Cors {
	origins := app.config.Server.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
	})
}
