package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// orderedSet keeps ids in the order they were added.
type orderedSet struct {
	ids []string
	has map[string]struct{}
}

func newOrderedSet(ids []string) *orderedSet {
	s := &orderedSet{has: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *orderedSet) contains(id string) bool {
	_, ok := s.has[id]
	return ok
}

func (s *orderedSet) add(id string) {
	if s.contains(id) {
		return
	}
	s.has[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *orderedSet) remove(id string) {
	if !s.contains(id) {
		return
	}
	delete(s.has, id)
	s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
}

type savedSets struct {
	places *orderedSet
	tours  *orderedSet
}

// SavedStore holds per-user saved place and tour ids. Every operation runs
// under one mutex so a toggle is a single atomic flip.
type SavedStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*savedSets
}

// NewSavedStore creates an empty store.
func NewSavedStore() *SavedStore {
	return &SavedStore{users: make(map[uuid.UUID]*savedSets)}
}

// Seed replaces the saved sets of userID.
func (s *SavedStore) Seed(userID uuid.UUID, places, tours []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = &savedSets{places: newOrderedSet(places), tours: newOrderedSet(tours)}
}

func (u *savedSets) set(kind domain.EntityKind) (*orderedSet, error) {
	switch kind {
	case domain.EntityKindPlace:
		return u.places, nil
	case domain.EntityKindTour:
		return u.tours, nil
	}
	return nil, fmt.Errorf("kind %q is not savable", kind)
}

// emptySets stands in for users that never toggled anything. It is never
// stored or mutated.
var emptySets = &savedSets{places: newOrderedSet(nil), tours: newOrderedSet(nil)}

// IsSaved reports whether id is in the user's set of kind. Unknown users
// have nothing saved.
func (s *SavedStore) IsSaved(_ context.Context, userID uuid.UUID, kind domain.EntityKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = emptySets
	}
	set, err := u.set(kind)
	if err != nil {
		return false, err
	}
	return set.contains(id), nil
}

// Toggle flips membership of id and returns the new state. It is the only
// operation that registers a new user.
func (s *SavedStore) Toggle(_ context.Context, userID uuid.UUID, kind domain.EntityKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = &savedSets{places: newOrderedSet(nil), tours: newOrderedSet(nil)}
	}
	set, err := u.set(kind)
	if err != nil {
		return false, err
	}
	s.users[userID] = u

	if set.contains(id) {
		set.remove(id)
		return false, nil
	}
	set.add(id)
	return true, nil
}

// List returns copies of the user's saved ids in save order.
func (s *SavedStore) List(_ context.Context, userID uuid.UUID) (places, tours []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return []string{}, []string{}, nil
	}
	return append([]string{}, u.places.ids...), append([]string{}, u.tours.ids...), nil
}
