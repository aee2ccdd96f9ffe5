// Package recommend ranks tours against a traveler's stated preferences.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// tourStore defines the catalog access needed by recommend.
type tourStore interface {
	ListTours(ctx context.Context) ([]domain.Tour, error)
}

// Strategy selects how match percentages are computed.
type Strategy string

const (
	// StrategyOverlap scores tours by preference overlap. Deterministic.
	StrategyOverlap Strategy = "overlap"
	// StrategyRandom draws a uniform percentage per tour.
	StrategyRandom Strategy = "random"
)

// Service implements preference matching.
type Service struct {
	log      *slog.Logger
	tours    tourStore
	strategy Strategy

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a recommend service. seed drives StrategyRandom; zero
// seeds from the clock.
func NewService(logger *slog.Logger, tours tourStore, strategy Strategy, seed uint64) (*Service, error) {
	switch strategy {
	case StrategyOverlap, StrategyRandom:
	default:
		return nil, fmt.Errorf("recommend: unknown strategy %q", strategy)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Service{
		log:      logger.With("service", "recommend"),
		tours:    tours,
		strategy: strategy,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}
