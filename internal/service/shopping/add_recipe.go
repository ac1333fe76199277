package shopping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/metrics"
	"github.com/heartmarshall/tastebite-backend/pkg/ctxutil"
)

// AddResult reports how a recipe changed the list.
type AddResult struct {
	ItemsAdded   int
	ItemsUpdated int
}

// listEntry tracks one item of the snapshot while a recipe is merged in.
type listEntry struct {
	item    *domain.ShoppingListItem
	isNew   bool
	dirty   bool
	touched bool // this recipe already contributed during the current call
}

// AddRecipeIngredients merges every ingredient of a recipe into the caller's
// shopping list.
//
// The user's items are read once into a snapshot keyed by normalized name,
// and all ingredients are merged against it, so two ingredients of the same
// recipe that normalize to the same name end up on one item. An item that
// already lists the recipe from an earlier call is left alone, which makes
// adding the same recipe twice a no-op.
//
// The work runs in a serializable transaction and is retried on write
// conflicts, so concurrent calls for the same user do not lose updates.
func (s *Service) AddRecipeIngredients(ctx context.Context, recipeID uuid.UUID) (AddResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return AddResult{}, domain.ErrUnauthorized
	}
	if recipeID == uuid.Nil {
		return AddResult{}, domain.NewValidationError("recipe_id", "required")
	}

	var result AddResult
	err := s.tx.RunInSerializableTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recipes.GetByID(txCtx, recipeID)
		if err != nil {
			return fmt.Errorf("get recipe: %w", err)
		}

		existing, err := s.items.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list shopping items: %w", err)
		}

		entries, order, res := merge(userID, rec, existing)

		for _, key := range order {
			e := entries[key]
			switch {
			case e.isNew:
				if _, err := s.items.Create(txCtx, e.item); err != nil {
					return fmt.Errorf("create shopping item %q: %w", e.item.NameNormalized, err)
				}
			case e.dirty:
				if err := s.items.UpdateContents(txCtx, e.item); err != nil {
					return fmt.Errorf("update shopping item %s: %w", e.item.ID, err)
				}
			}
		}

		result = res
		return nil
	})
	if err != nil {
		return AddResult{}, err
	}

	metrics.ShoppingItemChanges.WithLabelValues("added").Add(float64(result.ItemsAdded))
	metrics.ShoppingItemChanges.WithLabelValues("updated").Add(float64(result.ItemsUpdated))

	s.log.InfoContext(ctx, "recipe added to shopping list",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
		slog.Int("items_added", result.ItemsAdded),
		slog.Int("items_updated", result.ItemsUpdated),
	)

	return result, nil
}

// merge applies rec's ingredients to a snapshot of the user's items. It
// returns the entries keyed by normalized name, the keys in first-seen
// order and the counts. Existing items are copied before being changed.
func merge(userID uuid.UUID, rec *domain.Recipe, existing []domain.ShoppingListItem) (map[string]*listEntry, []string, AddResult) {
	var res AddResult

	entries := make(map[string]*listEntry, len(existing)+len(rec.Ingredients))
	var order []string
	for k := range existing {
		item := existing[k]
		item.Measures = append([]string(nil), item.Measures...)
		item.Provenance = append([]domain.ProvenanceEntry(nil), item.Provenance...)
		entries[item.NameNormalized] = &listEntry{item: &item}
		order = append(order, item.NameNormalized)
	}

	for _, ing := range rec.Ingredients {
		key := domain.NormalizeIngredientName(ing.Name)
		if key == "" {
			continue
		}

		e, found := entries[key]
		switch {
		case !found:
			item := &domain.ShoppingListItem{
				ID:             uuid.Must(uuid.NewV7()),
				UserID:         userID,
				Name:           domain.CleanDisplayName(ing.Name),
				NameNormalized: key,
				Measures:       []string{},
			}
			item.AddProvenance(rec.ID, rec.Title)
			item.AddMeasure(ing.Measure)
			entries[key] = &listEntry{item: item, isNew: true, touched: true}
			order = append(order, key)
			res.ItemsAdded++

		case e.touched:
			if e.item.AddMeasure(ing.Measure) {
				e.dirty = true
			}

		case e.item.HasRecipe(rec.ID):
			// Contributed by an earlier call.

		default:
			e.item.AddProvenance(rec.ID, rec.Title)
			e.item.AddMeasure(ing.Measure)
			e.dirty = true
			e.touched = true
			res.ItemsUpdated++
		}
	}

	return entries, order, res
}
