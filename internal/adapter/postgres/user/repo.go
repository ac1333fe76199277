// Package user implements the User repository using PostgreSQL.
// Accounts are created by the identity provider; this repository reads them
// and maintains the system account that owns canonical recipes.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{"id", "email", "name", "is_system", "created_at", "updated_at"}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// EnsureSystemUser returns the system account identified by email, creating
// it if missing. An existing account with that email is flagged as system.
func (r *Repo) EnsureSystemUser(ctx context.Context, email, name string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "email", "name", "is_system").
		Values(uuid.New(), email, name, true).
		Suffix(`ON CONFLICT (email) DO UPDATE SET is_system = true,
			updated_at = CASE WHEN users.is_system THEN users.updated_at ELSE now() END
			RETURNING id, email, name, is_system, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ensure system user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "system user", email)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.IsSystem, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
