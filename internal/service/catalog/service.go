// Package catalog serves filtered, sorted views of the read-only catalog.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// catalogStore defines the catalog reads needed by the browse service.
type catalogStore interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	GetProvince(ctx context.Context, id string) (*domain.Province, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	ListTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
	ListGuides(ctx context.Context) ([]domain.Guide, error)
	GetGuide(ctx context.Context, id string) (*domain.Guide, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

// Service implements catalog browsing.
type Service struct {
	log     *slog.Logger
	catalog catalogStore
}

// NewService creates a new catalog browse service instance.
func NewService(logger *slog.Logger, catalog catalogStore) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		catalog: catalog,
	}
}
