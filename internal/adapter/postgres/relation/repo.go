// Package relation implements persistence for the per-user relations that
// hang off a recipe: favorites, ratings and comments.
package relation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

// Repo provides favorite, rating and comment persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new relation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var (
	favoriteColumns = []string{"id", "user_id", "recipe_id", "created_at"}
	ratingColumns   = []string{"id", "user_id", "recipe_id", "value", "rated_at"}
	commentColumns  = []string{"id", "user_id", "recipe_id", "body", "created_at"}
)

const upsertRatingSQL = `
INSERT INTO ratings (id, user_id, recipe_id, value, rated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, recipe_id)
DO UPDATE SET value = EXCLUDED.value, rated_at = EXCLUDED.rated_at
RETURNING id, user_id, recipe_id, value, rated_at`

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

// ListFavoritesByRecipe returns every favorite on a recipe, oldest first.
func (r *Repo) ListFavoritesByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Favorite, error) {
	query, args, err := postgres.Builder().
		Select(favoriteColumns...).
		From("favorites").
		Where(sq.Eq{"recipe_id": recipeID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites of recipe %s: %w", recipeID, err)
	}

	favs, err := pgx.CollectRows(rows, scanFavorite)
	if err != nil {
		return nil, fmt.Errorf("list favorites of recipe %s: %w", recipeID, err)
	}
	return favs, nil
}

// GetFavorite returns the user's favorite on a recipe.
// Returns domain.ErrNotFound if the user has not favorited it.
func (r *Repo) GetFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Favorite, error) {
	query, args, err := postgres.Builder().
		Select(favoriteColumns...).
		From("favorites").
		Where(sq.Eq{"user_id": userID, "recipe_id": recipeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get favorite query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "favorite of recipe", recipeID)
	}
	fav, err := pgx.CollectExactlyOneRow(rows, scanFavorite)
	if err != nil {
		return nil, postgres.MapError(err, "favorite of recipe", recipeID)
	}
	return &fav, nil
}

// CreateFavorite inserts a favorite. If the user already favorited the
// recipe the existing row is returned. The insert never raises a unique
// violation, so it is safe inside a larger transaction.
func (r *Repo) CreateFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Favorite, error) {
	fav := domain.Favorite{ID: uuid.Must(uuid.NewV7()), UserID: userID, RecipeID: recipeID}

	query, args, err := postgres.Builder().
		Insert("favorites").
		Columns("id", "user_id", "recipe_id").
		Values(fav.ID, fav.UserID, fav.RecipeID).
		Suffix("ON CONFLICT (user_id, recipe_id) DO NOTHING RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert favorite query: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&fav.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetFavorite(ctx, userID, recipeID)
	}
	if err != nil {
		return nil, postgres.MapError(err, "favorite of recipe", recipeID)
	}
	return &fav, nil
}

// DeleteFavoriteByUser removes the user's favorite on a recipe and reports
// whether a row was deleted.
func (r *Repo) DeleteFavoriteByUser(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Delete("favorites").
		Where(sq.Eq{"user_id": userID, "recipe_id": recipeID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete favorite query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "favorite of recipe", recipeID)
	}
	return tag.RowsAffected() > 0, nil
}

// RepointFavorite moves a favorite to another recipe.
func (r *Repo) RepointFavorite(ctx context.Context, id, recipeID uuid.UUID) error {
	return r.repoint(ctx, "favorites", id, recipeID)
}

// DeleteFavorite removes a favorite by id.
func (r *Repo) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "favorites", id)
}

// ---------------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------------

// ListRatingsByRecipe returns every rating on a recipe, oldest first.
func (r *Repo) ListRatingsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Rating, error) {
	query, args, err := postgres.Builder().
		Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"recipe_id": recipeID}).
		OrderBy("rated_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ratings query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ratings of recipe %s: %w", recipeID, err)
	}

	ratings, err := pgx.CollectRows(rows, scanRating)
	if err != nil {
		return nil, fmt.Errorf("list ratings of recipe %s: %w", recipeID, err)
	}
	return ratings, nil
}

// GetRating returns the user's rating on a recipe.
// Returns domain.ErrNotFound if the user has not rated it.
func (r *Repo) GetRating(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Rating, error) {
	query, args, err := postgres.Builder().
		Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"user_id": userID, "recipe_id": recipeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get rating query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "rating of recipe", recipeID)
	}
	rating, err := pgx.CollectExactlyOneRow(rows, scanRating)
	if err != nil {
		return nil, postgres.MapError(err, "rating of recipe", recipeID)
	}
	return &rating, nil
}

// UpsertRating creates or replaces the user's rating on a recipe.
func (r *Repo) UpsertRating(ctx context.Context, userID, recipeID uuid.UUID, value int, ratedAt time.Time) (*domain.Rating, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, upsertRatingSQL,
		uuid.Must(uuid.NewV7()), userID, recipeID, value, ratedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "rating of recipe", recipeID)
	}
	rating, err := pgx.CollectExactlyOneRow(rows, scanRating)
	if err != nil {
		return nil, postgres.MapError(err, "rating of recipe", recipeID)
	}
	return &rating, nil
}

// UpdateRating overwrites a rating's value and timestamp.
func (r *Repo) UpdateRating(ctx context.Context, id uuid.UUID, value int, ratedAt time.Time) error {
	query, args, err := postgres.Builder().
		Update("ratings").
		Set("value", value).
		Set("rated_at", ratedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update rating query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "rating", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rating %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RepointRating moves a rating to another recipe.
func (r *Repo) RepointRating(ctx context.Context, id, recipeID uuid.UUID) error {
	return r.repoint(ctx, "ratings", id, recipeID)
}

// DeleteRating removes a rating by id.
func (r *Repo) DeleteRating(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "ratings", id)
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// CreateComment inserts a comment. A user may comment on a recipe any
// number of times.
func (r *Repo) CreateComment(ctx context.Context, userID, recipeID uuid.UUID, body string) (*domain.Comment, error) {
	c := domain.Comment{ID: uuid.Must(uuid.NewV7()), UserID: userID, RecipeID: recipeID, Body: body}

	query, args, err := postgres.Builder().
		Insert("comments").
		Columns("id", "user_id", "recipe_id", "body").
		Values(c.ID, c.UserID, c.RecipeID, c.Body).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "comment on recipe", recipeID)
	}
	return &c, nil
}

// ListCommentsByRecipe returns a recipe's comments, oldest first.
func (r *Repo) ListCommentsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"recipe_id": recipeID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments of recipe %s: %w", recipeID, err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		var c domain.Comment
		err := row.Scan(&c.ID, &c.UserID, &c.RecipeID, &c.Body, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list comments of recipe %s: %w", recipeID, err)
	}
	return comments, nil
}

// RepointComments moves every comment from one recipe to another and
// returns how many were moved.
func (r *Repo) RepointComments(ctx context.Context, fromRecipeID, toRecipeID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Update("comments").
		Set("recipe_id", toRecipeID).
		Where(sq.Eq{"recipe_id": fromRecipeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build repoint comments query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "comments of recipe", fromRecipeID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) repoint(ctx context.Context, table string, id, recipeID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("recipe_id", recipeID).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build repoint %s query: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, table, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, table, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func scanFavorite(row pgx.CollectableRow) (domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(&f.ID, &f.UserID, &f.RecipeID, &f.CreatedAt)
	return f, err
}

func scanRating(row pgx.CollectableRow) (domain.Rating, error) {
	var r domain.Rating
	err := row.Scan(&r.ID, &r.UserID, &r.RecipeID, &r.Value, &r.RatedAt)
	return r, err
}
