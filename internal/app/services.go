package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/relation"
	sharerepo "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/share"
	shoppingrepo "github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/shopping"
	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tastebite-backend/internal/adapter/provider/mealdb"
	"github.com/heartmarshall/tastebite-backend/internal/config"
	"github.com/heartmarshall/tastebite-backend/internal/service/interaction"
	"github.com/heartmarshall/tastebite-backend/internal/service/reconcile"
	"github.com/heartmarshall/tastebite-backend/internal/service/registry"
	"github.com/heartmarshall/tastebite-backend/internal/service/share"
	"github.com/heartmarshall/tastebite-backend/internal/service/shopping"
)

// Services holds the wired business services shared by the API server and
// the maintenance commands.
type Services struct {
	Registry    *registry.Service
	Interaction *interaction.Service
	Shopping    *shopping.Service
	Share       *share.Service
	Catalog     *mealdb.Provider
}

// NewServices builds repositories, the catalog client and all services on
// top of pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool,
		postgres.WithSerializableRetry(cfg.Shopping.MaxTxRetries, cfg.Shopping.RetryBaseWait),
	)

	recipes := recipe.New(pool)
	relations := relation.New(pool)
	items := shoppingrepo.New(pool)
	shares := sharerepo.New(pool)
	users := user.New(pool)

	catalog := mealdb.NewProvider(cfg.Catalog, logger)
	reconciler := reconcile.NewService(logger, relations, items)

	return &Services{
		Registry: registry.NewService(logger, recipes, users, reconciler, catalog, txm, registry.SystemAccount{
			Email: cfg.Maintenance.SystemUserEmail,
			Name:  cfg.Maintenance.SystemUserName,
		}),
		Interaction: interaction.NewService(logger, relations, txm),
		Shopping:    shopping.NewService(logger, items, recipes, txm),
		Share:       share.NewService(logger, shares, items, users, share.RandomToken(cfg.Share.TokenBytes)),
		Catalog:     catalog,
	}
}
