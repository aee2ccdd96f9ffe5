package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// BookingStore keeps bookings per user in submission order.
type BookingStore struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]domain.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byUser: make(map[uuid.UUID][]domain.Booking)}
}

// Create appends b to its user's list.
func (s *BookingStore) Create(_ context.Context, b domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[b.UserID] = append(s.byUser[b.UserID], b)
	return &b, nil
}

// ListByUser returns the user's bookings, newest first.
func (s *BookingStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byUser[userID]
	out := make([]domain.Booking, len(list))
	for i, b := range list {
		out[len(list)-1-i] = b
	}
	return out, nil
}

// GetByID returns a booking owned by userID.
func (s *BookingStore) GetByID(_ context.Context, userID, id uuid.UUID) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.byUser[userID] {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.NotFound("booking", id.String())
}

// TransitionStatus moves a booking from one status to another atomically.
// Returns ErrNotFound if the booking does not belong to userID and
// ErrConflict if its current status is not from.
func (s *BookingStore) TransitionStatus(_ context.Context, userID, id uuid.UUID, from, to domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byUser[userID]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Status != from {
			return nil, fmt.Errorf("booking %s is %s: %w", id, list[i].Status, domain.ErrConflict)
		}
		list[i].Status = to
		b := list[i]
		return &b, nil
	}
	return nil, domain.NotFound("booking", id.String())
}
