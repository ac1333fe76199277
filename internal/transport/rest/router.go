package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tastebite-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Recipes  *RecipeHandler
	Shopping *ShoppingHandler

	// API wraps every /api and /shared route, typically rate limiting.
	// Probes and /metrics bypass it. May be nil.
	API middleware.Middleware
}

// NewRouter registers all routes on a new ServeMux. Every route is
// instrumented with its pattern as the metrics label.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	probe := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(pattern)(fn))
	}
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(middleware.Instrument(pattern), h.API)(fn))
	}

	probe("GET /live", h.Health.Live)
	probe("GET /ready", h.Health.Ready)
	probe("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	route("GET /shared/{token}", h.Shopping.Shared)

	route("POST /api/recipes/import", h.Recipes.Import)
	route("POST /api/catalog/{externalId}/import", h.Recipes.ImportFromCatalog)
	route("POST /api/recipes/{id}/favorite", h.Recipes.ToggleFavorite)
	route("PUT /api/recipes/{id}/rating", h.Recipes.Rate)
	route("POST /api/recipes/{id}/comments", h.Recipes.AddComment)

	route("GET /api/shopping-list", h.Shopping.List)
	route("DELETE /api/shopping-list", h.Shopping.Clear)
	route("POST /api/shopping-list/recipes/{id}", h.Shopping.AddRecipe)
	route("PATCH /api/shopping-list/items/{id}/toggle", h.Shopping.ToggleItem)
	route("DELETE /api/shopping-list/items/{id}", h.Shopping.RemoveItem)
	route("POST /api/shopping-list/share", h.Shopping.Share)

	return mux
}
