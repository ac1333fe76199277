package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/auth"
	"github.com/heartmarshall/tastebite-backend/internal/config"
	"github.com/heartmarshall/tastebite-backend/internal/transport/middleware"
	"github.com/heartmarshall/tastebite-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully within Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svcs := NewServices(cfg, pool, logger)

	handler, stop := NewHTTPHandler(cfg, pool, svcs, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHTTPHandler builds the routed and fully wrapped HTTP handler. The returned
// stop function releases background resources such as the rate limiter
// janitor.
func NewHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, svcs *Services, logger *slog.Logger) (http.Handler, func()) {
	stop := func() {}

	var apiMW middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.CleanupInterval)
		stop = limiter.Stop
		apiMW = limiter.Limit()
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, svcs.Catalog, BuildVersion()),
		Recipes:  rest.NewRecipeHandler(svcs.Registry, svcs.Interaction, logger),
		Shopping: rest.NewShoppingHandler(svcs.Shopping, svcs.Share, logger),
		API:      apiMW,
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	)(mux)

	return handler, stop
}
