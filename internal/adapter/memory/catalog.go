// Package memory holds the in-process stores: the read-only catalog built
// from a dataset and the mutable per-user saved, booking, and review stores.
package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// Catalog is the read-only entity store. It is immutable after NewCatalog,
// so concurrent reads need no locking. Returned slices are shared and must
// not be modified by callers.
type Catalog struct {
	provinces []domain.Province
	places    []domain.Place
	tours     []domain.Tour
	guides    []domain.Guide
	posts     []domain.Post
	user      domain.User

	provinceIdx map[string]int
	placeIdx    map[string]int
	tourIdx     map[string]int
	guideIdx    map[string]int
	postIdx     map[string]int
}

// NewCatalog validates ds and indexes it by id.
func NewCatalog(ds *domain.Dataset) (*Catalog, error) {
	if ds == nil {
		return nil, fmt.Errorf("catalog: nil dataset")
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c := &Catalog{
		provinces: ds.Provinces,
		places:    ds.Places,
		tours:     ds.Tours,
		guides:    ds.Guides,
		posts:     ds.Posts,
		user:      ds.User,
	}
	c.provinceIdx = index(c.provinces, func(p domain.Province) string { return p.ID })
	c.placeIdx = index(c.places, func(p domain.Place) string { return p.ID })
	c.tourIdx = index(c.tours, func(t domain.Tour) string { return t.ID })
	c.guideIdx = index(c.guides, func(g domain.Guide) string { return g.ID })
	c.postIdx = index(c.posts, func(p domain.Post) string { return p.ID })

	return c, nil
}

func index[T any](items []T, key func(T) string) map[string]int {
	m := make(map[string]int, len(items))
	for i, it := range items {
		m[key(it)] = i
	}
	return m
}

func lookup[T any](items []T, idx map[string]int, entity, id string) (*T, error) {
	i, ok := idx[id]
	if !ok {
		return nil, domain.NotFound(entity, id)
	}
	v := items[i]
	return &v, nil
}

// Ping reports readiness. The catalog is loaded before the server starts,
// so it is always ready.
func (c *Catalog) Ping(ctx context.Context) error {
	return ctx.Err()
}

// DefaultUser returns the dataset's user record.
func (c *Catalog) DefaultUser() domain.User {
	return c.user
}

func (c *Catalog) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	return c.provinces, ctx.Err()
}

func (c *Catalog) GetProvince(_ context.Context, id string) (*domain.Province, error) {
	return lookup(c.provinces, c.provinceIdx, "province", id)
}

func (c *Catalog) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return c.places, ctx.Err()
}

func (c *Catalog) GetPlace(_ context.Context, id string) (*domain.Place, error) {
	return lookup(c.places, c.placeIdx, "place", id)
}

func (c *Catalog) ListTours(ctx context.Context) ([]domain.Tour, error) {
	return c.tours, ctx.Err()
}

func (c *Catalog) GetTour(_ context.Context, id string) (*domain.Tour, error) {
	return lookup(c.tours, c.tourIdx, "tour", id)
}

func (c *Catalog) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	return c.guides, ctx.Err()
}

func (c *Catalog) GetGuide(_ context.Context, id string) (*domain.Guide, error) {
	return lookup(c.guides, c.guideIdx, "guide", id)
}

func (c *Catalog) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return c.posts, ctx.Err()
}

func (c *Catalog) GetPost(_ context.Context, id string) (*domain.Post, error) {
	return lookup(c.posts, c.postIdx, "post", id)
}

// GetGuidesByIDs returns the guides for ids in no particular order; unknown
// ids are skipped. Used as a dataloader batch source.
func (c *Catalog) GetGuidesByIDs(_ context.Context, ids []string) ([]domain.Guide, error) {
	out := make([]domain.Guide, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.guideIdx[id]; ok {
			out = append(out, c.guides[i])
		}
	}
	return out, nil
}

// GetProvincesByIDs is the province counterpart of GetGuidesByIDs.
func (c *Catalog) GetProvincesByIDs(_ context.Context, ids []string) ([]domain.Province, error) {
	out := make([]domain.Province, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.provinceIdx[id]; ok {
			out = append(out, c.provinces[i])
		}
	}
	return out, nil
}

// Exists reports whether an entity of kind with id is in the catalog.
func (c *Catalog) Exists(_ context.Context, kind domain.EntityKind, id string) (bool, error) {
	var ok bool
	switch kind {
	case domain.EntityKindPlace:
		_, ok = c.placeIdx[id]
	case domain.EntityKindTour:
		_, ok = c.tourIdx[id]
	case domain.EntityKindGuide:
		_, ok = c.guideIdx[id]
	default:
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	return ok, nil
}
