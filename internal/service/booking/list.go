package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

// ListBookings returns the current user's bookings, newest first.
func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("booking.ListBookings: %w", err)
	}
	return list, nil
}

// GetBooking returns one booking of the current user. Bookings of other
// users are reported as ErrNotFound.
func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("booking.GetBooking: %w", err)
	}
	return b, nil
}

// CancelBooking cancels a pending booking of the current user.
// Returns ErrNotFound for unknown or foreign ids and ErrConflict if the
// booking is no longer pending.
func (s *Service) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookings.TransitionStatus(ctx, userID, id, domain.BookingStatusPending, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("booking.CancelBooking: %w", err)
	}

	s.log.InfoContext(ctx, "booking cancelled",
		slog.String("user_id", userID.String()),
		slog.String("booking_id", id.String()))

	return b, nil
}
