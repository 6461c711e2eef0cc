package routes

import (
	"infinite-experiment/reachburo/internal/api"
	"infinite-experiment/reachburo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, apiKeys []string) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.APIKeyMiddleware(apiKeys))

		v1.Post("/estimates", api.EstimatesHandler(deps))
	})
}
