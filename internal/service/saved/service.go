// Package saved manages the current user's saved places and tours.
package saved

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// savedStore defines the per-user saved-state storage needed by the service.
type savedStore interface {
	IsSaved(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, id string) (bool, error)
	Toggle(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, id string) (bool, error)
	List(ctx context.Context, userID uuid.UUID) (places, tours []string, err error)
}

// Service implements saved-state operations.
type Service struct {
	log   *slog.Logger
	store savedStore
}

// NewService creates a new saved service instance.
func NewService(logger *slog.Logger, store savedStore) *Service {
	return &Service{
		log:   logger.With("service", "saved"),
		store: store,
	}
}
