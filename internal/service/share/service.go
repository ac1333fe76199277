// Package share publishes read-only links to shopping lists.
package share

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/pkg/ctxutil"
)

const maxCreateAttempts = 3

type shareRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SharedShoppingList, error)
	GetByToken(ctx context.Context, token string) (*domain.SharedShoppingList, error)
	Create(ctx context.Context, userID uuid.UUID, token string) (*domain.SharedShoppingList, error)
}

type itemRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenFunc produces a new opaque share token.
type TokenFunc func() (string, error)

// Service implements share link operations.
type Service struct {
	log      *slog.Logger
	shares   shareRepo
	items    itemRepo
	users    userRepo
	newToken TokenFunc
}

// NewService creates a new share service. A nil newToken falls back to
// RandomToken with 32 bytes.
func NewService(logger *slog.Logger, shares shareRepo, items itemRepo, users userRepo, newToken TokenFunc) *Service {
	if newToken == nil {
		newToken = RandomToken(32)
	}
	return &Service{
		log:      logger.With("service", "share"),
		shares:   shares,
		items:    items,
		users:    users,
		newToken: newToken,
	}
}

// RandomToken returns a TokenFunc that reads n bytes from crypto/rand and
// encodes them as unpadded URL-safe base64.
func RandomToken(n int) TokenFunc {
	return func() (string, error) {
		b := make([]byte, n)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("generate random bytes: %w", err)
		}
		return base64.RawURLEncoding.EncodeToString(b), nil
	}
}

// GetOrCreateShareLink returns the caller's share link, creating it on first
// use. The token never changes once issued.
func (s *Service) GetOrCreateShareLink(ctx context.Context) (*domain.SharedShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	for range maxCreateAttempts {
		link, err := s.shares.GetByUserID(ctx, userID)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get share link: %w", err)
		}

		token, err := s.newToken()
		if err != nil {
			return nil, fmt.Errorf("new share token: %w", err)
		}

		link, err = s.shares.Create(ctx, userID, token)
		if err == nil {
			s.log.InfoContext(ctx, "share link created", slog.String("user_id", userID.String()))
			return link, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create share link: %w", err)
		}
		// Either a concurrent request created the user's link or the token
		// collided with another user's. The next pass tells them apart.
	}

	return nil, fmt.Errorf("create share link: %w", domain.ErrConflict)
}

// Resolve returns the shopping list behind token for an anonymous visitor.
// Only the owner's display name is exposed.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.SharedListView, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}

	link, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get share link: %w", err)
	}

	owner, err := s.users.GetByID(ctx, link.UserID)
	if err != nil {
		return nil, fmt.Errorf("get share owner: %w", err)
	}

	items, err := s.items.ListByUser(ctx, link.UserID)
	if err != nil {
		return nil, fmt.Errorf("list shared items: %w", err)
	}

	return &domain.SharedListView{OwnerName: owner.Name, Items: items}, nil
}
