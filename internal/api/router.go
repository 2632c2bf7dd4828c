/**
 * @description
 * This file sets up the HTTP router for the reconciliation-service. It defines
 * the API endpoints, associates them with their corresponding handlers, and
 * applies any necessary middleware, such as for internal authentication.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ReconciliationRoutes creates and returns a new router for the reconciliation service.
func ReconciliationRoutes(h *ReconciliationHandlers, internalAPIKey string) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	// Group routes that require the internal API key.
	r.Group(func(r chi.Router) {
		r.Use(InternalAPIKeyMiddleware(internalAPIKey))

		// Reconciliation run endpoints
		r.Post("/runs", h.RunReconciliationHandler)
		r.Get("/runs", h.ListRunsHandler)
		r.Get("/runs/{runID}", h.GetRunHandler)

		// Row-level helper tools used by the console UI
		r.Post("/tools/extract-name", h.ExtractNameHandler)
		r.Post("/tools/fuzzy-score", h.FuzzyScoreHandler)
	})

	return r
}
