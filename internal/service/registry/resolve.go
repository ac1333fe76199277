package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/metrics"
	"github.com/heartmarshall/tastebite-backend/internal/provider"
	"github.com/heartmarshall/tastebite-backend/pkg/ctxutil"
)

// ResolveOrCreate returns the canonical recipe for input.ExternalID. When
// one exists it is returned unchanged, whoever imported it. Otherwise a new
// recipe owned by the calling user is created from the payload. The boolean
// reports whether a recipe was created. The payload is only validated when
// it is going to be stored.
//
// A concurrent import that wins the insert race is detected through the
// unique index and its recipe is returned instead.
func (s *Service) ResolveOrCreate(ctx context.Context, input ImportInput) (*domain.Recipe, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if errs := validateExternalID(input.ExternalID); len(errs) > 0 {
		return nil, false, domain.NewValidationErrors(errs)
	}
	externalID := strings.TrimSpace(input.ExternalID)

	existing, err := s.recipes.GetByExternalID(ctx, externalID)
	if err == nil {
		metrics.RecipeImports.WithLabelValues("existing").Inc()
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get recipe by external id: %w", err)
	}

	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	return s.create(ctx, userID, externalID, input.Payload)
}

// ImportFromCatalog imports a recipe by catalog id. Known ids are served from
// the store without contacting the catalog. The catalog is called outside
// any transaction. Returns domain.ErrNotFound if the catalog does not know
// the id.
func (s *Service) ImportFromCatalog(ctx context.Context, externalID string) (*domain.Recipe, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if errs := validateExternalID(externalID); len(errs) > 0 {
		return nil, false, domain.NewValidationErrors(errs)
	}
	externalID = strings.TrimSpace(externalID)

	existing, err := s.recipes.GetByExternalID(ctx, externalID)
	if err == nil {
		metrics.RecipeImports.WithLabelValues("existing").Inc()
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get recipe by external id: %w", err)
	}

	fetched, err := s.catalog.FetchRecipe(ctx, externalID)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog fetch failed",
			slog.String("external_id", externalID),
			slog.String("error", err.Error()),
		)
		return nil, false, fmt.Errorf("fetch catalog recipe: %w", err)
	}
	if fetched == nil {
		return nil, false, fmt.Errorf("catalog recipe %s: %w", externalID, domain.ErrNotFound)
	}

	input := ImportInput{ExternalID: externalID, Payload: payloadFromCatalog(fetched)}
	if err := input.Validate(); err != nil {
		return nil, false, fmt.Errorf("catalog recipe %s: %w", externalID, err)
	}

	return s.create(ctx, userID, externalID, input.Payload)
}

// create inserts the recipe and falls back to the existing row when another
// import created it first.
func (s *Service) create(ctx context.Context, ownerID uuid.UUID, externalID string, payload domain.RecipePayload) (*domain.Recipe, bool, error) {
	rec := newRecipe(ownerID, externalID, payload)

	var created *domain.Recipe
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.recipes.Create(txCtx, rec)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			existing, err := s.recipes.GetByExternalID(ctx, externalID)
			if err != nil {
				return nil, false, fmt.Errorf("get recipe after conflict: %w", err)
			}
			s.log.InfoContext(ctx, "concurrent import resolved to existing recipe",
				slog.String("external_id", externalID),
				slog.String("recipe_id", existing.ID.String()),
			)
			metrics.RecipeImports.WithLabelValues("existing").Inc()
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create recipe: %w", txErr)
	}

	metrics.RecipeImports.WithLabelValues("created").Inc()
	s.log.InfoContext(ctx, "recipe imported",
		slog.String("external_id", externalID),
		slog.String("recipe_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Int("ingredients", len(created.Ingredients)),
	)

	return created, true, nil
}

func newRecipe(ownerID uuid.UUID, externalID string, p domain.RecipePayload) *domain.Recipe {
	ingredients := make([]domain.Ingredient, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredients = append(ingredients, domain.Ingredient{
			Name:     domain.CleanDisplayName(ing.Name),
			Measure:  domain.CleanDisplayName(ing.Measure),
			Position: len(ingredients),
		})
	}

	var image *string
	if p.ImageURL != nil && strings.TrimSpace(*p.ImageURL) != "" {
		img := strings.TrimSpace(*p.ImageURL)
		image = &img
	}

	return &domain.Recipe{
		ID:           uuid.Must(uuid.NewV7()),
		ExternalID:   &externalID,
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(p.Title),
		Category:     strings.TrimSpace(p.Category),
		Area:         strings.TrimSpace(p.Area),
		Instructions: strings.TrimSpace(p.Instructions),
		ImageURL:     image,
		Ingredients:  ingredients,
	}
}

func payloadFromCatalog(c *provider.CatalogRecipe) domain.RecipePayload {
	ingredients := make([]domain.Ingredient, len(c.Ingredients))
	for k, ing := range c.Ingredients {
		ingredients[k] = domain.Ingredient{Name: ing.Name, Measure: ing.Measure, Position: k}
	}
	return domain.RecipePayload{
		Title:        c.Title,
		Category:     c.Category,
		Area:         c.Area,
		Instructions: c.Instructions,
		ImageURL:     c.ImageURL,
		Ingredients:  ingredients,
	}
}
