package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// Recommend scores every tour and returns them by descending match
// percentage. Ties keep catalog order.
func (s *Service) Recommend(ctx context.Context, prefs Preferences) ([]domain.RecommendedTour, error) {
	prefs = prefs.normalized()

	tours, err := s.tours.ListTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommend: list tours: %w", err)
	}

	out := make([]domain.RecommendedTour, len(tours))
	for i, t := range tours {
		out[i] = domain.RecommendedTour{Tour: t, MatchPercentage: s.percentage(t, prefs)}
	}

	slices.SortStableFunc(out, func(a, b domain.RecommendedTour) int {
		return b.MatchPercentage - a.MatchPercentage
	})

	s.log.DebugContext(ctx, "tours ranked",
		slog.String("strategy", string(s.strategy)),
		slog.Int("count", len(out)))

	return out, nil
}

func (s *Service) percentage(t domain.Tour, prefs Preferences) int {
	if s.strategy == StrategyRandom {
		s.mu.Lock()
		defer s.mu.Unlock()
		span := domain.MaxMatchPercentage - domain.MinMatchPercentage + 1
		return domain.MinMatchPercentage + s.rng.IntN(span)
	}
	return overlapPercentage(t, prefs)
}
