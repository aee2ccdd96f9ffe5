package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

func (s *Service) GetProvince(ctx context.Context, id string) (*domain.Province, error) {
	p, err := s.catalog.GetProvince(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProvince: %w", err)
	}
	return p, nil
}

func (s *Service) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	p, err := s.catalog.GetPlace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetPlace: %w", err)
	}
	return p, nil
}

func (s *Service) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	t, err := s.catalog.GetTour(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTour: %w", err)
	}
	return t, nil
}

func (s *Service) GetGuide(ctx context.Context, id string) (*domain.Guide, error) {
	g, err := s.catalog.GetGuide(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetGuide: %w", err)
	}
	return g, nil
}

func (s *Service) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	p, err := s.catalog.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetPost: %w", err)
	}
	return p, nil
}
