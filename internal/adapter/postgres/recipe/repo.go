// Package recipe implements the Recipe repository using PostgreSQL.
// Ingredients are stored in their own table and always travel with the
// recipe; deleting a recipe removes its dependents explicitly, in order.
package recipe

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

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var recipeColumns = []string{
	"r.id", "r.external_id", "r.owner_id", "r.title", "r.category", "r.area",
	"r.instructions", "r.image_url", "r.created_at", "r.updated_at",
}

// Canonical order among recipes sharing an external id: system-owned first,
// then the earliest created, then the lowest id.
const canonicalOrder = "u.is_system DESC, r.created_at ASC, r.id ASC"

const duplicateExternalIDsSQL = `
SELECT external_id
FROM recipes
WHERE external_id IS NOT NULL
GROUP BY external_id
HAVING count(*) > 1
ORDER BY external_id`

const ingredientsSQL = `
SELECT position, name, measure
FROM ingredients
WHERE recipe_id = $1
ORDER BY position`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe with its ingredients.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query, args, err := selectRecipes().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get recipe query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecipe(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}

	if err := r.loadIngredients(ctx, q, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByExternalID returns the canonical recipe for a catalog id with its
// ingredients. When transient duplicates exist the one that would survive
// a merge is returned. Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.Recipe, error) {
	query, args, err := selectRecipes().
		Where(sq.Eq{"r.external_id": externalID}).
		OrderBy(canonicalOrder).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get recipe by external id query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecipe(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe external_id", externalID)
	}

	if err := r.loadIngredients(ctx, q, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListDuplicateExternalIDs returns every external id held by more than one
// recipe, sorted.
func (r *Repo) ListDuplicateExternalIDs(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, duplicateExternalIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list duplicate external ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list duplicate external ids: %w", err)
	}
	return ids, nil
}

// ListByExternalID returns all recipes sharing externalID, without
// ingredients, in canonical order. The caller still applies its own
// keeper rule; the order only makes results stable.
func (r *Repo) ListByExternalID(ctx context.Context, externalID string) ([]domain.Recipe, error) {
	query, args, err := selectRecipes().
		Where(sq.Eq{"r.external_id": externalID}).
		OrderBy(canonicalOrder).
		Suffix("FOR UPDATE OF r").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by external id query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes by external id: %w", err)
	}
	defer rows.Close()

	var result []domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recipes by external id: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the recipe and its ingredients. It must run inside a
// transaction. Returns domain.ErrAlreadyExists when another recipe already
// holds the external id.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	query, args, err := postgres.Builder().
		Insert("recipes").
		Columns("id", "external_id", "owner_id", "title", "category", "area", "instructions", "image_url").
		Values(rec.ID, rec.ExternalID, rec.OwnerID, rec.Title, rec.Category, rec.Area, rec.Instructions, rec.ImageURL).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recipe query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	created := *rec
	if err := q.QueryRow(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	if len(rec.Ingredients) == 0 {
		created.Ingredients = []domain.Ingredient{}
		return &created, nil
	}

	ins := postgres.Builder().Insert("ingredients").Columns("recipe_id", "position", "name", "measure")
	created.Ingredients = make([]domain.Ingredient, len(rec.Ingredients))
	for i, ing := range rec.Ingredients {
		ing.Position = i
		created.Ingredients[i] = ing
		ins = ins.Values(rec.ID, i, ing.Name, ing.Measure)
	}

	query, args, err = ins.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ingredients query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "ingredients of recipe", rec.ID)
	}

	return &created, nil
}

// UpdateOwner reassigns the recipe to ownerID.
func (r *Repo) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update("recipes").
		Set("owner_id", ownerID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update owner query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the recipe together with its ingredients and any relation
// rows still pointing at it, children first. It must run inside a
// transaction so a failure leaves nothing half-deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for _, table := range []string{"ingredients", "favorites", "ratings", "comments"} {
		query, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"recipe_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, table+" of recipe", id)
		}
	}

	query, args, err := postgres.Builder().Delete("recipes").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete recipe query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectRecipes() sq.SelectBuilder {
	return postgres.Builder().
		Select(recipeColumns...).
		From("recipes r").
		Join("users u ON u.id = r.owner_id")
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(
		&rec.ID, &rec.ExternalID, &rec.OwnerID, &rec.Title, &rec.Category, &rec.Area,
		&rec.Instructions, &rec.ImageURL, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repo) loadIngredients(ctx context.Context, q postgres.Querier, rec *domain.Recipe) error {
	rows, err := q.Query(ctx, ingredientsSQL, rec.ID)
	if err != nil {
		return fmt.Errorf("load ingredients of recipe %s: %w", rec.ID, err)
	}

	ings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ingredient, error) {
		var ing domain.Ingredient
		err := row.Scan(&ing.Position, &ing.Name, &ing.Measure)
		return ing, err
	})
	if err != nil {
		return fmt.Errorf("load ingredients of recipe %s: %w", rec.ID, err)
	}

	rec.Ingredients = ings
	return nil
}
