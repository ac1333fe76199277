package rest

import (
	"time"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

type ingredientDTO struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

type recipeResponse struct {
	ID           string          `json:"id"`
	ExternalID   *string         `json:"externalId,omitempty"`
	OwnerID      string          `json:"ownerId"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Area         string          `json:"area"`
	Instructions string          `json:"instructions"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
	Ingredients  []ingredientDTO `json:"ingredients"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	ings := make([]ingredientDTO, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ings[i] = ingredientDTO{Name: ing.Name, Measure: ing.Measure}
	}
	return recipeResponse{
		ID:           r.ID.String(),
		ExternalID:   r.ExternalID,
		OwnerID:      r.OwnerID.String(),
		Title:        r.Title,
		Category:     r.Category,
		Area:         r.Area,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		Ingredients:  ings,
		CreatedAt:    r.CreatedAt,
	}
}

type ratingResponse struct {
	RecipeID string    `json:"recipeId"`
	Value    int       `json:"value"`
	RatedAt  time.Time `json:"ratedAt"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipeId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type provenanceDTO struct {
	RecipeID string `json:"recipeId"`
	Title    string `json:"title"`
}

type shoppingItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Measures     []string        `json:"measures"`
	Recipes      []provenanceDTO `json:"recipes"`
	RecipeTitles []string        `json:"recipeTitles"`
	Checked      bool            `json:"checked"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toShoppingItemResponse(it *domain.ShoppingListItem) shoppingItemResponse {
	recipes := make([]provenanceDTO, len(it.Provenance))
	for i, p := range it.Provenance {
		recipes[i] = provenanceDTO{RecipeID: p.RecipeID.String(), Title: p.Title}
	}
	measures := it.Measures
	if measures == nil {
		measures = []string{}
	}
	return shoppingItemResponse{
		ID:           it.ID.String(),
		Name:         it.Name,
		Measures:     measures,
		Recipes:      recipes,
		RecipeTitles: it.RecipeTitles(),
		Checked:      it.Checked,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toShoppingItems(items []domain.ShoppingListItem) []shoppingItemResponse {
	out := make([]shoppingItemResponse, len(items))
	for i := range items {
		out[i] = toShoppingItemResponse(&items[i])
	}
	return out
}
