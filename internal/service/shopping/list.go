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

// ListItems returns the caller's shopping list in insertion order.
func (s *Service) ListItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	return items, nil
}

// ToggleChecked flips the checked flag of one of the caller's items.
func (s *Service) ToggleChecked(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.ShoppingListItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.ownedItem(txCtx, userID, itemID)
		if err != nil {
			return err
		}

		updated, err = s.items.SetChecked(txCtx, item.ID, !item.Checked)
		if err != nil {
			return fmt.Errorf("set checked: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ShoppingItemChanges.WithLabelValues("toggled").Inc()
	return updated, nil
}

// RemoveItem deletes one of the caller's items.
func (s *Service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedItem(txCtx, userID, itemID); err != nil {
			return err
		}
		if err := s.items.Delete(txCtx, itemID); err != nil {
			return fmt.Errorf("delete shopping item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ShoppingItemChanges.WithLabelValues("removed").Inc()
	return nil
}

// ClearList removes every item of the caller's list and returns how many
// were deleted.
func (s *Service) ClearList(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.items.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear shopping list: %w", err)
	}

	metrics.ShoppingItemChanges.WithLabelValues("removed").Add(float64(n))
	s.log.InfoContext(ctx, "shopping list cleared",
		slog.String("user_id", userID.String()),
		slog.Int("removed", n),
	)
	return n, nil
}

func (s *Service) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.ShoppingListItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}
