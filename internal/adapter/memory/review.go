package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

type reviewTarget struct {
	kind domain.EntityKind
	id   string
}

// ReviewStore is an append-only list of reviews indexed by target.
type ReviewStore struct {
	mu       sync.RWMutex
	all      []domain.Review
	byTarget map[reviewTarget][]int
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{byTarget: make(map[reviewTarget][]int)}
}

func (s *ReviewStore) Create(_ context.Context, r domain.Review) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reviewTarget{kind: r.TargetType, id: r.TargetID}
	s.byTarget[key] = append(s.byTarget[key], len(s.all))
	s.all = append(s.all, r)
	return &r, nil
}

// ListByTarget returns reviews of one entity, newest first.
func (s *ReviewStore) ListByTarget(_ context.Context, kind domain.EntityKind, targetID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.byTarget[reviewTarget{kind: kind, id: targetID}]
	out := make([]domain.Review, 0, len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		out = append(out, s.all[idx[i]])
	}
	return out, nil
}

// ListByUser returns reviews written by userID, newest first.
func (s *ReviewStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Review, 0)
	for i := len(s.all) - 1; i >= 0; i-- {
		if s.all[i].UserID == userID {
			out = append(out, s.all[i])
		}
	}
	return out, nil
}
