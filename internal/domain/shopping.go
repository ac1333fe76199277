package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ProvenanceEntry records one recipe that contributed to a shopping list line.
type ProvenanceEntry struct {
	RecipeID uuid.UUID `json:"recipeId"`
	Title    string    `json:"title"`
}

// ShoppingListItem is one line of a user's shopping list. NameNormalized is
// unique within the user's list.
type ShoppingListItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	NameNormalized string
	Measures       []string
	Provenance     []ProvenanceEntry
	Checked        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasRecipe reports whether recipeID already contributed to the item.
func (i *ShoppingListItem) HasRecipe(recipeID uuid.UUID) bool {
	return slices.ContainsFunc(i.Provenance, func(p ProvenanceEntry) bool {
		return p.RecipeID == recipeID
	})
}

// AddProvenance appends a contributing recipe. Callers check HasRecipe first.
func (i *ShoppingListItem) AddProvenance(recipeID uuid.UUID, title string) {
	i.Provenance = append(i.Provenance, ProvenanceEntry{RecipeID: recipeID, Title: title})
}

// AddMeasure appends measure unless it is blank or already present.
// Returns true if the set changed.
func (i *ShoppingListItem) AddMeasure(measure string) bool {
	measure = CleanDisplayName(measure)
	if measure == "" || slices.Contains(i.Measures, measure) {
		return false
	}
	i.Measures = append(i.Measures, measure)
	return true
}

// RecipeTitles returns the provenance titles, index-aligned with RecipeIDs.
func (i *ShoppingListItem) RecipeTitles() []string {
	titles := make([]string, len(i.Provenance))
	for k, p := range i.Provenance {
		titles[k] = p.Title
	}
	return titles
}

// RecipeIDs returns the provenance recipe ids, index-aligned with RecipeTitles.
func (i *ShoppingListItem) RecipeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(i.Provenance))
	for k, p := range i.Provenance {
		ids[k] = p.RecipeID
	}
	return ids
}

// RepointProvenance rewrites the entries of recipe from onto recipe to,
// keeping their titles. An entry for from is dropped instead when to is
// already listed. Reports whether the item changed.
func (i *ShoppingListItem) RepointProvenance(from, to uuid.UUID) bool {
	if from == to || !i.HasRecipe(from) {
		return false
	}

	hasTo := i.HasRecipe(to)
	out := make([]ProvenanceEntry, 0, len(i.Provenance))
	for _, p := range i.Provenance {
		if p.RecipeID == from {
			if hasTo {
				continue
			}
			p.RecipeID = to
			hasTo = true
		}
		out = append(out, p)
	}
	i.Provenance = out
	return true
}

// SharedShoppingList is the public read-only link to one user's list.
// One per user, never regenerated once created.
type SharedShoppingList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
}

// SharedListView is what an anonymous visitor of a share link sees.
type SharedListView struct {
	OwnerName string
	Items     []ShoppingListItem
}
