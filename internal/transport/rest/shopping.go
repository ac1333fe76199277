package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/service/shopping"
)

type shoppingService interface {
	ListItems(ctx context.Context) ([]domain.ShoppingListItem, error)
	AddRecipeIngredients(ctx context.Context, recipeID uuid.UUID) (shopping.AddResult, error)
	ToggleChecked(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingListItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	ClearList(ctx context.Context) (int, error)
}

type shareService interface {
	GetOrCreateShareLink(ctx context.Context) (*domain.SharedShoppingList, error)
	Resolve(ctx context.Context, token string) (*domain.SharedListView, error)
}

// ShoppingHandler serves the shopping list and its public share link.
type ShoppingHandler struct {
	shopping shoppingService
	share    shareService
	log      *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(shop shoppingService, share shareService, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		shopping: shop,
		share:    share,
		log:      logger.With("handler", "shopping"),
	}
}

type shoppingListResponse struct {
	Items []shoppingItemResponse `json:"items"`
}

type addRecipeResponse struct {
	ItemsAdded   int `json:"itemsAdded"`
	ItemsUpdated int `json:"itemsUpdated"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

type shareLinkResponse struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}

type sharedListResponse struct {
	OwnerName string                 `json:"ownerName"`
	Items     []shoppingItemResponse `json:"items"`
}

// List handles GET /api/shopping-list.
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.shopping.ListItems(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shoppingListResponse{Items: toShoppingItems(items)})
}

// AddRecipe handles POST /api/shopping-list/recipes/{id}.
func (h *ShoppingHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.shopping.AddRecipeIngredients(r.Context(), recipeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, addRecipeResponse{ItemsAdded: res.ItemsAdded, ItemsUpdated: res.ItemsUpdated})
}

// ToggleItem handles PATCH /api/shopping-list/items/{id}/toggle.
func (h *ShoppingHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.shopping.ToggleChecked(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toShoppingItemResponse(item))
}

// RemoveItem handles DELETE /api/shopping-list/items/{id}.
func (h *ShoppingHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.shopping.RemoveItem(r.Context(), itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/shopping-list.
func (h *ShoppingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.shopping.ClearList(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clearResponse{Removed: n})
}

// Share handles POST /api/shopping-list/share.
func (h *ShoppingHandler) Share(w http.ResponseWriter, r *http.Request) {
	link, err := h.share.GetOrCreateShareLink(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shareLinkResponse{Token: link.Token, Path: "/shared/" + link.Token})
}

// Shared handles GET /shared/{token}. No authentication.
func (h *ShoppingHandler) Shared(w http.ResponseWriter, r *http.Request) {
	view, err := h.share.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sharedListResponse{
		OwnerName: view.OwnerName,
		Items:     toShoppingItems(view.Items),
	})
}
