package registry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/provider"
	"github.com/heartmarshall/tastebite-backend/internal/service/reconcile"
)

type recipeRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Recipe, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	ListDuplicateExternalIDs(ctx context.Context) ([]string, error)
	ListByExternalID(ctx context.Context, externalID string) ([]domain.Recipe, error)
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	EnsureSystemUser(ctx context.Context, email, name string) (*domain.User, error)
}

type reconciler interface {
	Repoint(ctx context.Context, loserID, keeperID uuid.UUID) (reconcile.Result, error)
}

type catalogProvider interface {
	FetchRecipe(ctx context.Context, externalID string) (*provider.CatalogRecipe, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SystemAccount identifies the account that owns canonical recipes after a
// merge.
type SystemAccount struct {
	Email string
	Name  string
}

// Service resolves catalog ids to exactly one stored recipe and collapses
// duplicates left behind by racing imports.
type Service struct {
	log        *slog.Logger
	recipes    recipeRepo
	users      userRepo
	reconciler reconciler
	catalog    catalogProvider
	tx         txManager
	system     SystemAccount
}

// NewService creates a new registry service.
func NewService(
	logger *slog.Logger,
	recipes recipeRepo,
	users userRepo,
	reconciler reconciler,
	catalog catalogProvider,
	tx txManager,
	system SystemAccount,
) *Service {
	return &Service{
		log:        logger.With("service", "registry"),
		recipes:    recipes,
		users:      users,
		reconciler: reconciler,
		catalog:    catalog,
		tx:         tx,
		system:     system,
	}
}
