package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueExternalID returns a catalog id no other test uses.
func UniqueExternalID() string {
	return "ext-" + uuid.New().String()
}

// SeedUser inserts a regular user.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, false)
}

// SeedSystemUser inserts a user flagged as the system account. The email is
// unique so parallel tests do not collide.
func SeedSystemUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, true)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, system bool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		IsSystem:  system,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, is_system, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.IsSystem, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// RecipeOpt customizes SeedRecipe.
type RecipeOpt func(*domain.Recipe)

// WithExternalID marks the seeded recipe as imported.
func WithExternalID(id string) RecipeOpt {
	return func(r *domain.Recipe) { r.ExternalID = &id }
}

// WithIngredients sets the seeded recipe's ingredients as (name, measure) pairs.
func WithIngredients(pairs ...[2]string) RecipeOpt {
	return func(r *domain.Recipe) {
		r.Ingredients = r.Ingredients[:0]
		for i, p := range pairs {
			r.Ingredients = append(r.Ingredients, domain.Ingredient{Name: p[0], Measure: p[1], Position: i})
		}
	}
}

// WithCreatedAt overrides the creation timestamp.
func WithCreatedAt(ts time.Time) RecipeOpt {
	return func(r *domain.Recipe) { r.CreatedAt = ts.UTC().Truncate(time.Microsecond) }
}

// WithTitle overrides the generated title.
func WithTitle(title string) RecipeOpt {
	return func(r *domain.Recipe) { r.Title = title }
}

// SeedRecipe inserts a recipe with one ingredient unless opts say otherwise.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...RecipeOpt) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Recipe{
		ID:           uuid.Must(uuid.NewV7()),
		OwnerID:      ownerID,
		Title:        "Recipe " + uniqueSuffix(),
		Category:     "Chicken",
		Area:         "Japanese",
		Instructions: "Cook it.",
		Ingredients:  []domain.Ingredient{{Name: "Salt", Measure: "1 tsp", Position: 0}},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&r)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, external_id, owner_id, title, category, area, instructions, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.ExternalID, r.OwnerID, r.Title, r.Category, r.Area, r.Instructions, r.ImageURL, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert recipe: %v", err)
	}

	for _, ing := range r.Ingredients {
		_, err := pool.Exec(ctx,
			`INSERT INTO ingredients (recipe_id, position, name, measure) VALUES ($1, $2, $3, $4)`,
			r.ID, ing.Position, ing.Name, ing.Measure,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecipe insert ingredient: %v", err)
		}
	}

	return r
}

// SeedFavorite inserts a favorite for (userID, recipeID).
func SeedFavorite(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID) domain.Favorite {
	t.Helper()

	f := domain.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO favorites (id, user_id, recipe_id, created_at) VALUES ($1, $2, $3, $4)`,
		f.ID, f.UserID, f.RecipeID, f.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFavorite: %v", err)
	}
	return f
}

// SeedRating inserts a rating with an explicit timestamp.
func SeedRating(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID, value int, ratedAt time.Time) domain.Rating {
	t.Helper()

	r := domain.Rating{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
		RatedAt:  ratedAt.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO ratings (id, user_id, recipe_id, value, rated_at) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.UserID, r.RecipeID, r.Value, r.RatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRating: %v", err)
	}
	return r
}

// SeedComment inserts a comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID, body string) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		Body:      body,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, user_id, recipe_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.RecipeID, c.Body, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// CountRows returns the number of rows in table matching "column = value".
func CountRows(t *testing.T, pool *pgxpool.Pool, table, column string, value any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+column+` = $1`, value,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s.%s: %v", table, column, err)
	}
	return n
}
