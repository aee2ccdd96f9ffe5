package rest

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	loaders "github.com/heartmarshall/vntravel-backend/internal/transport/rest/dataloader"
)

// tourView is a tour as served to clients, with its guide and province
// name resolved.
type tourView struct {
	domain.Tour
	Discount     int           `json:"discount"`
	Guide        *domain.Guide `json:"guide"`
	ProvinceName string        `json:"provinceName"`
}

type recommendedTourView struct {
	tourView
	MatchPercentage int `json:"matchPercentage"`
}

// hydrateTours resolves guides and provinces for all tours. Every lookup is
// issued before any is awaited so the loaders answer them in one batch each.
func hydrateTours(ctx context.Context, tours []domain.Tour) ([]tourView, error) {
	l := loaders.FromContext(ctx)

	guides := make([]dataloader.Thunk[*domain.Guide], len(tours))
	provinces := make([]dataloader.Thunk[*domain.Province], len(tours))
	for i, t := range tours {
		guides[i] = l.GuideByID.Load(ctx, t.GuideID)
		provinces[i] = l.ProvinceByID.Load(ctx, t.ProvinceID)
	}

	out := make([]tourView, len(tours))
	for i, t := range tours {
		guide, err := guides[i]()
		if err != nil {
			return nil, fmt.Errorf("load guide %s: %w", t.GuideID, err)
		}
		province, err := provinces[i]()
		if err != nil {
			return nil, fmt.Errorf("load province %s: %w", t.ProvinceID, err)
		}

		name := t.ProvinceID
		if province != nil {
			name = province.Name
		}
		out[i] = tourView{
			Tour:         t,
			Discount:     t.Discount(),
			Guide:        guide,
			ProvinceName: name,
		}
	}
	return out, nil
}

func hydrateTour(ctx context.Context, t domain.Tour) (*tourView, error) {
	views, err := hydrateTours(ctx, []domain.Tour{t})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func hydrateRecommended(ctx context.Context, recs []domain.RecommendedTour) ([]recommendedTourView, error) {
	tours := make([]domain.Tour, len(recs))
	for i, r := range recs {
		tours[i] = r.Tour
	}
	views, err := hydrateTours(ctx, tours)
	if err != nil {
		return nil, err
	}

	out := make([]recommendedTourView, len(recs))
	for i, v := range views {
		out[i] = recommendedTourView{tourView: v, MatchPercentage: recs[i].MatchPercentage}
	}
	return out, nil
}
