// Package mealdb is a client for TheMealDB recipe catalog.
package mealdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/tastebite-backend/internal/config"
	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/metrics"
	"github.com/heartmarshall/tastebite-backend/internal/provider"
)

const (
	defaultBaseURL   = "https://www.themealdb.com/api/json/v1/1"
	defaultRetryWait = 500 * time.Millisecond
)

// errUpstream marks responses that count against the circuit breaker.
var errUpstream = errors.New("upstream failure")

// Provider fetches recipes from TheMealDB. Outgoing requests are rate
// limited, retried once on 5xx or network errors, and guarded by a circuit
// breaker that fails fast with domain.ErrCatalogUnavailable while open.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*provider.CatalogRecipe]
	retryWait  time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from catalog configuration.
func NewProvider(cfg config.CatalogConfig, logger *slog.Logger) *Provider {
	log := logger.With("adapter", "mealdb")

	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst),
		breaker:    newBreaker(cfg.FailureThreshold, cfg.OpenTimeout, log),
		retryWait:  defaultRetryWait,
		log:        log,
	}
}

// NewProviderWithURL creates a Provider with default limits and a custom
// base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(config.CatalogConfig{
		BaseURL:          baseURL,
		Timeout:          10 * time.Second,
		RequestsPerSec:   5,
		Burst:            10,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}, logger)
}

func newBreaker(threshold uint32, openTimeout time.Duration, log *slog.Logger) *gobreaker.CircuitBreaker[*provider.CatalogRecipe] {
	return gobreaker.NewCircuitBreaker[*provider.CatalogRecipe](gobreaker.Settings{
		Name:        "mealdb",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CatalogBreakerState.Set(breakerStateValue(to))
			log.Warn("catalog circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Available reports whether the circuit breaker currently lets requests through.
func (p *Provider) Available() bool {
	return p.breaker.State() != gobreaker.StateOpen
}

// FetchRecipe looks up a recipe by its catalog id.
// Returns nil, nil if the catalog does not know the id.
func (p *Provider) FetchRecipe(ctx context.Context, externalID string) (*provider.CatalogRecipe, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		metrics.CatalogRequests.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("mealdb: rate limit wait: %w", err)
	}

	start := time.Now()
	result, err := p.breaker.Execute(func() (*provider.CatalogRecipe, error) {
		return p.lookup(ctx, externalID)
	})
	metrics.CatalogRequestDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CatalogRequests.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("mealdb: %w: %w", domain.ErrCatalogUnavailable, err)
	case errors.Is(err, errUpstream):
		metrics.CatalogRequests.WithLabelValues("error").Inc()
		p.log.ErrorContext(ctx, "mealdb request failed", slog.String("external_id", externalID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("mealdb: %w: %w", domain.ErrCatalogUnavailable, err)
	case err != nil:
		metrics.CatalogRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("mealdb: %w", err)
	case result == nil:
		metrics.CatalogRequests.WithLabelValues("not_found").Inc()
		return nil, nil
	}

	metrics.CatalogRequests.WithLabelValues("ok").Inc()
	p.log.DebugContext(ctx, "mealdb response",
		slog.String("external_id", externalID),
		slog.Int("ingredients", len(result.Ingredients)),
	)
	return result, nil
}

func (p *Provider) lookup(ctx context.Context, externalID string) (*provider.CatalogRecipe, error) {
	reqURL := p.baseURL + "/lookup.php?i=" + url.QueryEscape(externalID)

	var body []byte
	backoff := retry.WithMaxRetries(1, retry.NewConstant(p.retryWait))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.WarnContext(ctx, "mealdb retry", slog.String("external_id", externalID), slog.String("reason", "network error"))
			return retry.RetryableError(fmt.Errorf("%w: %w", errUpstream, err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			body = nil
			return nil
		case resp.StatusCode >= 500:
			p.log.WarnContext(ctx, "mealdb retry", slog.String("external_id", externalID), slog.Int("status", resp.StatusCode))
			return retry.RetryableError(fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("%w: unexpected status %d", errUpstream, resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read body: %w", errUpstream, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var parsed apiLookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", errUpstream, err)
	}
	if len(parsed.Meals) == 0 {
		return nil, nil
	}

	return mapMeal(parsed.Meals[0]), nil
}

// mapMeal converts a meal object into a provider.CatalogRecipe. Slots with
// a blank ingredient name are skipped.
func mapMeal(m apiMeal) *provider.CatalogRecipe {
	result := &provider.CatalogRecipe{
		ExternalID:   m.field("idMeal"),
		Title:        m.field("strMeal"),
		Category:     m.field("strCategory"),
		Area:         m.field("strArea"),
		Instructions: m.field("strInstructions"),
		Ingredients:  []provider.CatalogIngredient{},
	}

	if thumb := m.field("strMealThumb"); thumb != "" {
		result.ImageURL = &thumb
	}

	for n := 1; n <= maxIngredients; n++ {
		name, measure := m.ingredient(n)
		if name == "" {
			continue
		}
		result.Ingredients = append(result.Ingredients, provider.CatalogIngredient{Name: name, Measure: measure})
	}

	return result
}
