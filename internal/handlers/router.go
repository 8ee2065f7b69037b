package handlers

import (
	"net/http"

	customMiddleware "untwist-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the HTTP surface: the public ingestion endpoint, the
// API-key-gated admin listing, and a health check. Permissive CORS is applied
// to every route; the mobile apps and the dashboard both call cross-origin.
func NewRouter(h *FeedbackHandler, adminAPIKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"untwist-feedback"}`))
	})

	r.Post("/feedback", h.SubmitFeedback)

	// Admin dashboard reads (read-only, API key when configured)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.APIKeyAuth(adminAPIKey))
		r.Get("/feedback", h.ListFeedback)
	})

	return r
}
