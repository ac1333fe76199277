// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastebite_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tastebite_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastebite_http_panics_total",
			Help: "Handler panics recovered by the middleware",
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastebite_http_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)

	// Registry
	RecipeImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastebite_recipe_imports_total",
			Help: "Recipe imports by outcome",
		},
		[]string{"outcome"}, // "created", "existing"
	)

	MergeGroups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastebite_merge_groups_total",
			Help: "Duplicate groups processed by the maintenance pass",
		},
		[]string{"outcome"}, // "merged", "failed"
	)

	MergeRecipesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastebite_merge_recipes_removed_total",
			Help: "Duplicate recipes deleted by the maintenance pass",
		},
	)

	// Shopping list
	ShoppingItemChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastebite_shopping_item_changes_total",
			Help: "Shopping list item changes by kind",
		},
		[]string{"change"}, // "added", "updated", "toggled", "removed"
	)

	// Store
	TxRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastebite_tx_retries_total",
			Help: "Serializable transactions retried after a write conflict",
		},
	)

	// Catalog
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastebite_catalog_requests_total",
			Help: "Recipe catalog lookups by result",
		},
		[]string{"result"}, // "ok", "not_found", "error", "rejected"
	)

	CatalogRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tastebite_catalog_request_duration_seconds",
			Help:    "Recipe catalog request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tastebite_catalog_breaker_state",
			Help: "Catalog circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
