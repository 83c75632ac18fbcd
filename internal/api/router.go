// Package api assembles the HTTP surface of the merge service: routing,
// middleware and the handlers from internal/handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklens/core/internal/api/middleware"
	"github.com/stacklens/core/internal/config"
	"github.com/stacklens/core/internal/handlers"
)

// NewRouter wires the service routes with request-id and CORS middleware.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Cors(cfg.CORSOrigin))

	r.Get("/health", handlers.HealthHandler)
	r.Post("/merge", handlers.MergeHandler)

	return r
}
