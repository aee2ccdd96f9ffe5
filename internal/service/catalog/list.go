package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// ListProvinces returns provinces, optionally restricted to one region.
func (s *Service) ListProvinces(ctx context.Context, region domain.Region) ([]domain.Province, error) {
	if region != "" && !region.IsValid() {
		return nil, domain.NewValidationError("region", "must be north, central, or south")
	}

	all, err := s.catalog.ListProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProvinces: %w", err)
	}

	out := make([]domain.Province, 0, len(all))
	for _, p := range all {
		if region == "" || p.Region == region {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListPlaces returns places matching filter.
func (s *Service) ListPlaces(ctx context.Context, filter PlaceFilter) ([]domain.Place, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all, err := s.catalog.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListPlaces: %w", err)
	}

	out := make([]domain.Place, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ProvinceID != "" && p.ProvinceID != filter.ProvinceID {
			continue
		}
		if p.Rating < filter.MinRating {
			continue
		}
		out = append(out, p)
	}

	sortByRating(out, filter.SortBy, func(p domain.Place) (float64, int) { return p.Rating, p.ReviewCount })
	return out, nil
}

// ListTours returns tours matching filter.
func (s *Service) ListTours(ctx context.Context, filter TourFilter) ([]domain.Tour, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all, err := s.catalog.ListTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListTours: %w", err)
	}

	category := domain.NormalizeText(filter.Category)
	out := make([]domain.Tour, 0, len(all))
	for _, t := range all {
		if filter.ProvinceID != "" && t.ProvinceID != filter.ProvinceID {
			continue
		}
		if category != "" && !containsNormalized(t.Categories, category) {
			continue
		}
		if filter.MinPrice > 0 && t.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && t.Price > filter.MaxPrice {
			continue
		}
		out = append(out, t)
	}

	switch filter.SortBy {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Tour) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Tour) int { return cmp.Compare(b.Price, a.Price) })
	default:
		sortByRating(out, filter.SortBy, func(t domain.Tour) (float64, int) { return t.Rating, t.ReviewCount })
	}
	return out, nil
}

// ListGuides returns guides matching filter.
func (s *Service) ListGuides(ctx context.Context, filter GuideFilter) ([]domain.Guide, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all, err := s.catalog.ListGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListGuides: %w", err)
	}

	language := domain.NormalizeText(filter.Language)
	specialty := domain.NormalizeText(filter.Specialty)
	out := make([]domain.Guide, 0, len(all))
	for _, g := range all {
		if filter.ProvinceID != "" && g.ProvinceID != filter.ProvinceID {
			continue
		}
		if filter.OnlineOnly && !g.IsOnline {
			continue
		}
		if filter.VerifiedOnly && !g.IsVerified {
			continue
		}
		if language != "" && !containsNormalized(g.Languages, language) {
			continue
		}
		if specialty != "" && !anyContains(g.Specialties, specialty) {
			continue
		}
		out = append(out, g)
	}

	sortByRating(out, filter.SortBy, func(g domain.Guide) (float64, int) { return g.Rating, g.ReviewCount })
	return out, nil
}

// ListPosts returns the community feed, newest first.
func (s *Service) ListPosts(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	all, err := s.catalog.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListPosts: %w", err)
	}

	tag := filter.tag()
	out := make([]domain.Post, 0, len(all))
	for _, p := range all {
		if tag != "" && !hasTag(p.Tags, tag) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b domain.Post) int { return b.PostedAt().Compare(a.PostedAt()) })
	return out, nil
}

func sortByRating[T any](items []T, by SortBy, key func(T) (float64, int)) {
	switch by {
	case SortRating:
		slices.SortStableFunc(items, func(a, b T) int {
			ra, _ := key(a)
			rb, _ := key(b)
			return cmp.Compare(rb, ra)
		})
	case SortReviews:
		slices.SortStableFunc(items, func(a, b T) int {
			_, ca := key(a)
			_, cb := key(b)
			return cmp.Compare(cb, ca)
		})
	}
}

func containsNormalized(values []string, needle string) bool {
	for _, v := range values {
		if domain.NormalizeText(v) == needle {
			return true
		}
	}
	return false
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if domain.ContainsFold(v, needle) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.TrimPrefix(domain.NormalizeText(t), "#") == tag {
			return true
		}
	}
	return false
}
