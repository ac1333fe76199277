// Package interaction records per-user favorites, ratings and comments on
// recipes.
package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/pkg/ctxutil"
)

type relationRepo interface {
	CreateFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Favorite, error)
	DeleteFavoriteByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	UpsertRating(ctx context.Context, userID, recipeID uuid.UUID, value int, ratedAt time.Time) (*domain.Rating, error)
	CreateComment(ctx context.Context, userID, recipeID uuid.UUID, body string) (*domain.Comment, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements favorite, rating and comment operations.
type Service struct {
	log       *slog.Logger
	relations relationRepo
	tx        txManager
	now       func() time.Time
}

// NewService creates a new interaction service.
func NewService(logger *slog.Logger, relations relationRepo, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "interaction"),
		relations: relations,
		tx:        tx,
		now:       time.Now,
	}
}

// ToggleFavorite adds the recipe to the caller's favorites or removes it if
// already there. Returns the new state.
func (s *Service) ToggleFavorite(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if recipeID == uuid.Nil {
		return false, domain.NewValidationError("recipe_id", "required")
	}

	var favorited bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.relations.DeleteFavoriteByUser(txCtx, userID, recipeID)
		if err != nil {
			return fmt.Errorf("remove favorite: %w", err)
		}
		if removed {
			favorited = false
			return nil
		}

		_, err = s.relations.CreateFavorite(txCtx, userID, recipeID)
		if err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "favorite toggled",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
		slog.Bool("favorited", favorited),
	)

	return favorited, nil
}

// Rate sets the caller's rating of a recipe, replacing any earlier one.
func (s *Service) Rate(ctx context.Context, input RateInput) (*domain.Rating, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rating, err := s.relations.UpsertRating(ctx, userID, input.RecipeID, input.Value, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("rate recipe: %w", err)
	}

	s.log.InfoContext(ctx, "recipe rated",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", input.RecipeID.String()),
		slog.Int("value", rating.Value),
	)

	return rating, nil
}

// AddComment adds a comment by the caller.
func (s *Service) AddComment(ctx context.Context, input CommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment, err := s.relations.CreateComment(ctx, userID, input.RecipeID, strings.TrimSpace(input.Body))
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", input.RecipeID.String()),
		slog.String("comment_id", comment.ID.String()),
	)

	return comment, nil
}
