// Command merge-duplicates collapses recipes that share a catalog external
// id into one canonical recipe owned by the system account. Favorites,
// ratings and comments of the removed copies are moved onto the keeper.
//
// It is meant to be run by an external scheduler, never concurrently with
// itself. Each duplicate group is merged in its own transaction, so a
// failed group is left untouched for the next run.
//
// Exit codes: 0 = success, 1 = error or at least one group failed.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/app"
	"github.com/heartmarshall/tastebite-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(cfg, pool, logger)

	report, err := svcs.Registry.MergeDuplicates(ctx)
	if err != nil {
		logger.Error("merge duplicates failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	for _, f := range report.Failures {
		logger.Error("duplicate group not merged",
			slog.String("external_id", f.ExternalID),
			slog.String("error", f.Err.Error()),
		)
	}

	logger.Info("merge duplicates completed",
		slog.Int("groups_found", report.GroupsFound),
		slog.Int("groups_merged", report.GroupsMerged),
		slog.Int("groups_failed", len(report.Failures)),
		slog.Int("recipes_removed", report.RecipesRemoved),
		slog.Int("favorites_moved", report.Relations.FavoritesMoved),
		slog.Int("favorites_dropped", report.Relations.FavoritesDropped),
		slog.Int("ratings_moved", report.Relations.RatingsMoved),
		slog.Int("ratings_merged", report.Relations.RatingsMerged),
		slog.Int("comments_moved", report.Relations.CommentsMoved),
		slog.Int("shopping_items_repointed", report.Relations.ShoppingItems),
	)

	if len(report.Failures) > 0 {
		pool.Close()
		os.Exit(1)
	}
}
