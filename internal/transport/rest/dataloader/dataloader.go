// Package dataloader provides per-request DataLoaders that batch guide and
// province lookups while a response hydrates a list of tours.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type guideRepo interface {
	GetGuidesByIDs(ctx context.Context, ids []string) ([]domain.Guide, error)
}

type provinceRepo interface {
	GetProvincesByIDs(ctx context.Context, ids []string) ([]domain.Province, error)
}

// Repos holds the catalog lookups required by DataLoaders.
type Repos struct {
	Guide    guideRepo
	Province provinceRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders; missing ids resolve to nil.
type Loaders struct {
	GuideByID    *dataloader.Loader[string, *domain.Guide]
	ProvinceByID *dataloader.Loader[string, *domain.Province]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		GuideByID: newLoader(newByIDBatchFn(repos.Guide.GetGuidesByIDs, func(g domain.Guide) string {
			return g.ID
		})),
		ProvinceByID: newLoader(newByIDBatchFn(repos.Province.GetProvincesByIDs, func(p domain.Province) string {
			return p.ID
		})),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context; is the middleware configured?")
	}
	return l
}
