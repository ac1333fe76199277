package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/service/interaction"
	"github.com/heartmarshall/tastebite-backend/internal/service/registry"
)

type registryService interface {
	ResolveOrCreate(ctx context.Context, input registry.ImportInput) (*domain.Recipe, bool, error)
	ImportFromCatalog(ctx context.Context, externalID string) (*domain.Recipe, bool, error)
}

type interactionService interface {
	ToggleFavorite(ctx context.Context, recipeID uuid.UUID) (bool, error)
	Rate(ctx context.Context, input interaction.RateInput) (*domain.Rating, error)
	AddComment(ctx context.Context, input interaction.CommentInput) (*domain.Comment, error)
}

// RecipeHandler serves recipe import and interaction endpoints.
type RecipeHandler struct {
	registry     registryService
	interactions interactionService
	log          *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(reg registryService, interactions interactionService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		registry:     reg,
		interactions: interactions,
		log:          logger.With("handler", "recipe"),
	}
}

type importRequest struct {
	ExternalID   string          `json:"externalId"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Area         string          `json:"area"`
	Instructions string          `json:"instructions"`
	ImageURL     *string         `json:"imageUrl"`
	Ingredients  []ingredientDTO `json:"ingredients"`
}

type rateRequest struct {
	Value int `json:"value"`
}

type commentRequest struct {
	Body string `json:"body"`
}

type favoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// Import handles POST /api/recipes/import.
// 201 when a new recipe was stored, 200 when the external id was known.
func (h *RecipeHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ings := make([]domain.Ingredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ings[i] = domain.Ingredient{Name: ing.Name, Measure: ing.Measure, Position: i}
	}

	rec, created, err := h.registry.ResolveOrCreate(r.Context(), registry.ImportInput{
		ExternalID: req.ExternalID,
		Payload: domain.RecipePayload{
			Title:        req.Title,
			Category:     req.Category,
			Area:         req.Area,
			Instructions: req.Instructions,
			ImageURL:     req.ImageURL,
			Ingredients:  ings,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, importStatus(created), toRecipeResponse(rec))
}

// ImportFromCatalog handles POST /api/catalog/{externalId}/import.
func (h *RecipeHandler) ImportFromCatalog(w http.ResponseWriter, r *http.Request) {
	rec, created, err := h.registry.ImportFromCatalog(r.Context(), r.PathValue("externalId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, importStatus(created), toRecipeResponse(rec))
}

// ToggleFavorite handles POST /api/recipes/{id}/favorite.
func (h *RecipeHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	favorited, err := h.interactions.ToggleFavorite(r.Context(), recipeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favoriteResponse{Favorited: favorited})
}

// Rate handles PUT /api/recipes/{id}/rating.
func (h *RecipeHandler) Rate(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req rateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rating, err := h.interactions.Rate(r.Context(), interaction.RateInput{RecipeID: recipeID, Value: req.Value})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ratingResponse{
		RecipeID: rating.RecipeID.String(),
		Value:    rating.Value,
		RatedAt:  rating.RatedAt,
	})
}

// AddComment handles POST /api/recipes/{id}/comments.
func (h *RecipeHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.interactions.AddComment(r.Context(), interaction.CommentInput{RecipeID: recipeID, Body: req.Body})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse{
		ID:        c.ID.String(),
		RecipeID:  c.RecipeID.String(),
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	})
}

func importStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
