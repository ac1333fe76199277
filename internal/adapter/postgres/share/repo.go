// Package share implements the SharedShoppingList repository.
package share

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

// Repo provides shared list persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var shareColumns = []string{"id", "user_id", "token", "created_at"}

// GetByUserID returns the user's share record.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SharedShoppingList, error) {
	return r.getOne(ctx, sq.Eq{"user_id": userID}, "shared list of user", userID)
}

// GetByToken returns the share record for a token.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.SharedShoppingList, error) {
	// The token itself is never echoed into errors.
	return r.getOne(ctx, sq.Eq{"token": token}, "shared list", "token")
}

// Create inserts a share record. Returns domain.ErrAlreadyExists if the user
// already has one or the token is taken.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, token string) (*domain.SharedShoppingList, error) {
	s := domain.SharedShoppingList{ID: uuid.Must(uuid.NewV7()), UserID: userID, Token: token}

	query, args, err := postgres.Builder().
		Insert("shared_shopping_lists").
		Columns("id", "user_id", "token").
		Values(s.ID, s.UserID, s.Token).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert shared list query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "shared list of user", userID)
	}
	return &s, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, entity string, key any) (*domain.SharedShoppingList, error) {
	query, args, err := postgres.Builder().
		Select(shareColumns...).
		From("shared_shopping_lists").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get shared list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	s, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (domain.SharedShoppingList, error) {
		var s domain.SharedShoppingList
		err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return &s, nil
}
