// Package booking validates and records tour reservations.
package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// tourCatalog defines the catalog lookup needed by booking.
type tourCatalog interface {
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
}

// bookingRepo defines the booking storage needed by booking.
type bookingRepo interface {
	Create(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, userID, id uuid.UUID, from, to domain.BookingStatus) (*domain.Booking, error)
}

// Service implements booking operations.
type Service struct {
	log      *slog.Logger
	tours    tourCatalog
	bookings bookingRepo
	now      func() time.Time
}

// NewService creates a new booking service instance.
func NewService(logger *slog.Logger, tours tourCatalog, bookings bookingRepo) *Service {
	return &Service{
		log:      logger.With("service", "booking"),
		tours:    tours,
		bookings: bookings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
