// Package user exposes the current user's profile.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

type userRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type savedLister interface {
	List(ctx context.Context, userID uuid.UUID) (places, tours []string, err error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	saved savedLister
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, saved savedLister) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		saved: saved,
	}
}

// Me returns the current user's profile with the saved sets as they are now.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	places, tours, err := s.saved.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: list saved: %w", err)
	}
	u.SavedPlaces = places
	u.SavedTours = tours

	return u, nil
}
