// Package shopping implements the ShoppingListItem repository using
// PostgreSQL. Provenance is persisted as a jsonb array of
// {recipeId, title} pairs and measures as a text array.
package shopping

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

// Repo provides shopping list persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var itemColumns = []string{
	"id", "user_id", "name", "name_normalized", "measures", "provenance",
	"checked", "created_at", "updated_at",
}

// ListByUser returns the user's items in insertion order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From("shopping_list_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shopping items of user %s: %w", userID, err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("list shopping items of user %s: %w", userID, err)
	}
	return items, nil
}

// ListByRecipe returns every user's items whose provenance names recipeID.
func (r *Repo) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.ShoppingListItem, error) {
	// Containment on the id alone, whatever the entry's title.
	filter, err := json.Marshal([]map[string]string{{"recipeId": recipeID.String()}})
	if err != nil {
		return nil, fmt.Errorf("encode provenance filter: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From("shopping_list_items").
		Where("provenance @> ?::jsonb", string(filter)).
		OrderBy("user_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items by recipe query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shopping items of recipe %s: %w", recipeID, err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("list shopping items of recipe %s: %w", recipeID, err)
	}
	return items, nil
}

// GetByID returns an item regardless of owner. Callers check ownership.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From("shopping_list_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", id)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", id)
	}
	return &item, nil
}

// Create inserts a new item. Returns domain.ErrAlreadyExists when the user
// already has an item with the same normalized name.
func (r *Repo) Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	provenance, err := json.Marshal(provenanceOrEmpty(item.Provenance))
	if err != nil {
		return nil, fmt.Errorf("encode provenance: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("shopping_list_items").
		Columns("id", "user_id", "name", "name_normalized", "measures", "provenance", "checked").
		Values(item.ID, item.UserID, item.Name, item.NameNormalized, measuresOrEmpty(item.Measures), provenance, item.Checked).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", item.NameNormalized)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", item.NameNormalized)
	}
	return &created, nil
}

// UpdateContents persists an item's measures and provenance.
func (r *Repo) UpdateContents(ctx context.Context, item *domain.ShoppingListItem) error {
	provenance, err := json.Marshal(provenanceOrEmpty(item.Provenance))
	if err != nil {
		return fmt.Errorf("encode provenance: %w", err)
	}

	query, args, err := postgres.Builder().
		Update("shopping_list_items").
		Set("measures", measuresOrEmpty(item.Measures)).
		Set("provenance", provenance).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "shopping item", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping item %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

// SetChecked updates the checked flag and returns the updated item.
func (r *Repo) SetChecked(ctx context.Context, id uuid.UUID, checked bool) (*domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder().
		Update("shopping_list_items").
		Set("checked", checked).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set checked query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", id)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "shopping item", id)
	}
	return &item, nil
}

// Delete removes an item by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("shopping_list_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "shopping item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAllByUser clears the user's list and returns how many items were
// removed.
func (r *Repo) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete("shopping_list_items").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear list query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "shopping list of user", userID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func measuresOrEmpty(m []string) []string {
	if m == nil {
		return []string{}
	}
	return m
}

func provenanceOrEmpty(p []domain.ProvenanceEntry) []domain.ProvenanceEntry {
	if p == nil {
		return []domain.ProvenanceEntry{}
	}
	return p
}

func scanItem(row pgx.CollectableRow) (domain.ShoppingListItem, error) {
	var (
		item       domain.ShoppingListItem
		provenance []byte
	)
	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.NameNormalized, &item.Measures, &provenance,
		&item.Checked, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return item, err
	}

	if err := json.Unmarshal(provenance, &item.Provenance); err != nil {
		return item, fmt.Errorf("decode provenance of item %s: %w", item.ID, err)
	}
	if item.Measures == nil {
		item.Measures = []string{}
	}
	return item, nil
}
