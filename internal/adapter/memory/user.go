package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// UserStore holds user profiles. Saved ids live in SavedStore; profiles
// returned here carry whatever was seeded.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserStore(seed ...domain.User) *UserStore {
	s := &UserStore{users: make(map[uuid.UUID]domain.User, len(seed))}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

// Get returns the profile of id. Unknown ids get a blank profile that is
// not stored.
func (s *UserStore) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		u = domain.User{ID: id, SavedPlaces: []string{}, SavedTours: []string{}}
	}
	return &u, nil
}
