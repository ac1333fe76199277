// Package shopping merges recipe ingredients into per-user shopping lists.
// Items are keyed by normalized ingredient name and remember which recipes
// contributed to them.
package shopping

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
)

type itemRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	UpdateContents(ctx context.Context, item *domain.ShoppingListItem) error
	SetChecked(ctx context.Context, id uuid.UUID, checked bool) (*domain.ShoppingListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements shopping list operations.
type Service struct {
	log     *slog.Logger
	items   itemRepo
	recipes recipeRepo
	tx      txManager
}

// NewService creates a new shopping list service.
func NewService(logger *slog.Logger, items itemRepo, recipes recipeRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "shopping"),
		items:   items,
		recipes: recipes,
		tx:      tx,
	}
}
