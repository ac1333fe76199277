// Package reconcile moves favorites, ratings, comments and shopping list
// provenance from a duplicate recipe onto the recipe that survives a merge,
// keeping at most one favorite and one rating per (user, recipe).
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

type relationRepo interface {
	ListFavoritesByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Favorite, error)
	GetFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Favorite, error)
	RepointFavorite(ctx context.Context, id, recipeID uuid.UUID) error
	DeleteFavorite(ctx context.Context, id uuid.UUID) error

	ListRatingsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Rating, error)
	GetRating(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Rating, error)
	UpdateRating(ctx context.Context, id uuid.UUID, value int, ratedAt time.Time) error
	RepointRating(ctx context.Context, id, recipeID uuid.UUID) error
	DeleteRating(ctx context.Context, id uuid.UUID) error

	RepointComments(ctx context.Context, fromRecipeID, toRecipeID uuid.UUID) (int, error)
}

type shoppingRepo interface {
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.ShoppingListItem, error)
	UpdateContents(ctx context.Context, item *domain.ShoppingListItem) error
}

// Service repoints relations between recipes.
type Service struct {
	log       *slog.Logger
	relations relationRepo
	items     shoppingRepo
}

// NewService creates a new reconcile service.
func NewService(logger *slog.Logger, relations relationRepo, items shoppingRepo) *Service {
	return &Service{
		log:       logger.With("service", "reconcile"),
		relations: relations,
		items:     items,
	}
}

// Result counts what Repoint did.
type Result struct {
	FavoritesMoved   int
	FavoritesDropped int
	RatingsMoved     int
	RatingsMerged    int
	CommentsMoved    int
	ShoppingItems    int
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.FavoritesMoved += other.FavoritesMoved
	r.FavoritesDropped += other.FavoritesDropped
	r.RatingsMoved += other.RatingsMoved
	r.RatingsMerged += other.RatingsMerged
	r.CommentsMoved += other.CommentsMoved
	r.ShoppingItems += other.ShoppingItems
}

// Repoint moves every favorite, rating, comment and shopping list
// provenance entry of loserID onto keeperID.
//
//   - A favorite is dropped when the same user already favorited the keeper.
//   - When both recipes carry a rating from the same user the later one wins:
//     its value and timestamp end up on the keeper's row and the loser's row
//     is deleted. Equal timestamps keep the keeper's value.
//   - Comments always move.
//   - A shopping list item naming the loser names the keeper instead, once.
//
// Repoint does not open a transaction. It must run inside the caller's
// transaction together with the deletion of the loser.
func (s *Service) Repoint(ctx context.Context, loserID, keeperID uuid.UUID) (Result, error) {
	var res Result

	if loserID == keeperID {
		return res, fmt.Errorf("repoint %s onto itself: %w", loserID, domain.ErrValidation)
	}

	if err := s.repointFavorites(ctx, loserID, keeperID, &res); err != nil {
		return res, err
	}
	if err := s.repointRatings(ctx, loserID, keeperID, &res); err != nil {
		return res, err
	}

	moved, err := s.relations.RepointComments(ctx, loserID, keeperID)
	if err != nil {
		return res, fmt.Errorf("repoint comments: %w", err)
	}
	res.CommentsMoved = moved

	if err := s.repointShopping(ctx, loserID, keeperID, &res); err != nil {
		return res, err
	}

	s.log.DebugContext(ctx, "relations repointed",
		slog.String("loser_id", loserID.String()),
		slog.String("keeper_id", keeperID.String()),
		slog.Int("favorites_moved", res.FavoritesMoved),
		slog.Int("favorites_dropped", res.FavoritesDropped),
		slog.Int("ratings_moved", res.RatingsMoved),
		slog.Int("ratings_merged", res.RatingsMerged),
		slog.Int("comments_moved", res.CommentsMoved),
		slog.Int("shopping_items", res.ShoppingItems),
	)

	return res, nil
}

func (s *Service) repointFavorites(ctx context.Context, loserID, keeperID uuid.UUID, res *Result) error {
	favs, err := s.relations.ListFavoritesByRecipe(ctx, loserID)
	if err != nil {
		return fmt.Errorf("list favorites: %w", err)
	}

	for _, fav := range favs {
		_, err := s.relations.GetFavorite(ctx, fav.UserID, keeperID)
		switch {
		case err == nil:
			if err := s.relations.DeleteFavorite(ctx, fav.ID); err != nil {
				return fmt.Errorf("drop duplicate favorite: %w", err)
			}
			res.FavoritesDropped++
		case errors.Is(err, domain.ErrNotFound):
			if err := s.relations.RepointFavorite(ctx, fav.ID, keeperID); err != nil {
				return fmt.Errorf("repoint favorite: %w", err)
			}
			res.FavoritesMoved++
		default:
			return fmt.Errorf("get keeper favorite: %w", err)
		}
	}
	return nil
}

func (s *Service) repointRatings(ctx context.Context, loserID, keeperID uuid.UUID, res *Result) error {
	ratings, err := s.relations.ListRatingsByRecipe(ctx, loserID)
	if err != nil {
		return fmt.Errorf("list ratings: %w", err)
	}

	for _, rating := range ratings {
		existing, err := s.relations.GetRating(ctx, rating.UserID, keeperID)
		if errors.Is(err, domain.ErrNotFound) {
			if err := s.relations.RepointRating(ctx, rating.ID, keeperID); err != nil {
				return fmt.Errorf("repoint rating: %w", err)
			}
			res.RatingsMoved++
			continue
		}
		if err != nil {
			return fmt.Errorf("get keeper rating: %w", err)
		}

		if rating.RatedAt.After(existing.RatedAt) {
			if err := s.relations.UpdateRating(ctx, existing.ID, rating.Value, rating.RatedAt); err != nil {
				return fmt.Errorf("merge rating: %w", err)
			}
		}
		if err := s.relations.DeleteRating(ctx, rating.ID); err != nil {
			return fmt.Errorf("drop merged rating: %w", err)
		}
		res.RatingsMerged++
	}
	return nil
}

func (s *Service) repointShopping(ctx context.Context, loserID, keeperID uuid.UUID, res *Result) error {
	items, err := s.items.ListByRecipe(ctx, loserID)
	if err != nil {
		return fmt.Errorf("list shopping items: %w", err)
	}

	for k := range items {
		item := &items[k]
		if !item.RepointProvenance(loserID, keeperID) {
			continue
		}
		if err := s.items.UpdateContents(ctx, item); err != nil {
			return fmt.Errorf("repoint shopping item %s: %w", item.ID, err)
		}
		res.ShoppingItems++
	}
	return nil
}
