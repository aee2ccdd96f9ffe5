// Package review validates and records user reviews of catalog entities.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// targetCatalog resolves review targets.
type targetCatalog interface {
	Exists(ctx context.Context, kind domain.EntityKind, id string) (bool, error)
}

// reviewRepo defines the review storage needed by review.
type reviewRepo interface {
	Create(ctx context.Context, r domain.Review) (*domain.Review, error)
	ListByTarget(ctx context.Context, kind domain.EntityKind, targetID string) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Review, error)
}

// Service implements review operations. Reviews never change the target's
// authored rating or review count.
type Service struct {
	log     *slog.Logger
	targets targetCatalog
	reviews reviewRepo
	now     func() time.Time
}

// NewService creates a new review service instance.
func NewService(logger *slog.Logger, targets targetCatalog, reviews reviewRepo) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		targets: targets,
		reviews: reviews,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
