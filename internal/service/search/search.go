package search

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// Search returns catalog entities whose name contains the query. Guides
// also match on specialties. Results are grouped places, tours, guides,
// each group in catalog order.
func (s *Service) Search(ctx context.Context, input Input) (*Result, error) {
	q := input.query()
	if q == "" {
		return &Result{Searched: false, Results: []domain.SearchResult{}}, nil
	}
	typ := input.Type.Normalize()

	var places, tours, guides []domain.SearchResult

	g, gctx := errgroup.WithContext(ctx)
	if typ.Includes(domain.EntityKindPlace) {
		g.Go(func() error {
			var err error
			places, err = s.searchPlaces(gctx, q)
			return err
		})
	}
	if typ.Includes(domain.EntityKindTour) {
		g.Go(func() error {
			var err error
			tours, err = s.searchTours(gctx, q)
			return err
		})
	}
	if typ.Includes(domain.EntityKindGuide) {
		g.Go(func() error {
			var err error
			guides, err = s.searchGuides(gctx, q)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(places)+len(tours)+len(guides))
	results = append(results, places...)
	results = append(results, tours...)
	results = append(results, guides...)

	return &Result{Searched: true, Results: results}, nil
}

func (s *Service) searchPlaces(ctx context.Context, q string) ([]domain.SearchResult, error) {
	places, err := s.catalog.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	var out []domain.SearchResult
	for _, p := range places {
		if !domain.ContainsFold(p.Name, q) {
			continue
		}
		out = append(out, domain.SearchResult{
			ID:         p.ID,
			SourceType: domain.EntityKindPlace,
			Name:       p.Name,
			Image:      p.CoverImage(),
			Subtitle:   p.Address,
			Rating:     p.Rating,
		})
	}
	return out, nil
}

func (s *Service) searchTours(ctx context.Context, q string) ([]domain.SearchResult, error) {
	tours, err := s.catalog.ListTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	provinces, err := s.catalog.ListProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	names := make(map[string]string, len(provinces))
	for _, p := range provinces {
		names[p.ID] = p.Name
	}

	var out []domain.SearchResult
	for _, t := range tours {
		if !domain.ContainsFold(t.Name, q) {
			continue
		}
		subtitle, ok := names[t.ProvinceID]
		if !ok {
			subtitle = t.ProvinceID
		}
		out = append(out, domain.SearchResult{
			ID:         t.ID,
			SourceType: domain.EntityKindTour,
			Name:       t.Name,
			Image:      t.CoverImage(),
			Subtitle:   subtitle,
			Rating:     t.Rating,
		})
	}
	return out, nil
}

func (s *Service) searchGuides(ctx context.Context, q string) ([]domain.SearchResult, error) {
	guides, err := s.catalog.ListGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}

	var out []domain.SearchResult
	for _, g := range guides {
		if !guideMatches(g, q) {
			continue
		}
		out = append(out, domain.SearchResult{
			ID:         g.ID,
			SourceType: domain.EntityKindGuide,
			Name:       g.Name,
			Image:      g.Avatar,
			Subtitle:   strings.Join(g.Specialties, ", "),
			Rating:     g.Rating,
		})
	}
	return out, nil
}

func guideMatches(g domain.Guide, q string) bool {
	if domain.ContainsFold(g.Name, q) {
		return true
	}
	for _, sp := range g.Specialties {
		if domain.ContainsFold(sp, q) {
			return true
		}
	}
	return false
}
