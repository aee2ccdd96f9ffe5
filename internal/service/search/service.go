// Package search implements cross-entity text search over the catalog.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// catalogStore defines the read-only catalog access needed by search.
type catalogStore interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	ListTours(ctx context.Context) ([]domain.Tour, error)
	ListGuides(ctx context.Context) ([]domain.Guide, error)
}

// Service implements search operations.
type Service struct {
	log     *slog.Logger
	catalog catalogStore
	latency time.Duration

	mu       sync.Mutex
	inflight map[string]*session
}

// session is the in-flight search of one session key.
type session struct {
	cancel context.CancelCauseFunc
}

// NewService creates a search service. latency delays SearchLatest calls
// and may be zero.
func NewService(logger *slog.Logger, catalog catalogStore, latency time.Duration) *Service {
	return &Service{
		log:      logger.With("service", "search"),
		catalog:  catalog,
		latency:  latency,
		inflight: make(map[string]*session),
	}
}
