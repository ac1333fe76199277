package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a stored recipe. ExternalID is set only for recipes imported
// from the catalog; at most one recipe exists per ExternalID once the
// duplicate merge has run.
type Recipe struct {
	ID           uuid.UUID
	ExternalID   *string
	OwnerID      uuid.UUID
	Title        string
	Category     string
	Area         string
	Instructions string
	ImageURL     *string
	Ingredients  []Ingredient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExternal reports whether the recipe came from the catalog.
func (r *Recipe) IsExternal() bool {
	return r.ExternalID != nil && *r.ExternalID != ""
}

// Ingredient belongs to exclusively one recipe. Position keeps the
// catalog order stable.
type Ingredient struct {
	Name     string
	Measure  string
	Position int
}

// RecipePayload is the content a recipe is created from, either supplied by
// a client or fetched from the catalog.
type RecipePayload struct {
	Title        string
	Category     string
	Area         string
	Instructions string
	ImageURL     *string
	Ingredients  []Ingredient
}
