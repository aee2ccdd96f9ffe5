package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

// SubmitBooking validates input against the tour and records a pending
// booking. All failing rules are reported in one ValidationError, in the
// order tourId, date, guests, contactName, contactPhone, note.
func (s *Service) SubmitBooking(ctx context.Context, input SubmitInput) (*domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		errs []domain.FieldError
		tour *domain.Tour
	)

	tourID := strings.TrimSpace(input.TourID)
	if tourID == "" {
		errs = append(errs, domain.FieldError{Field: FieldTourID, Message: "required"})
	} else {
		t, err := s.tours.GetTour(ctx, tourID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errs = append(errs, domain.FieldError{Field: FieldTourID, Message: "tour not found"})
		case err != nil:
			return nil, fmt.Errorf("booking.SubmitBooking: get tour: %w", err)
		default:
			tour = t
			errs = append(errs, input.validateAgainst(tour)...)
		}
	}
	errs = append(errs, input.validateContact()...)

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	b := domain.Booking{
		ID:           uuid.New(),
		UserID:       userID,
		TourID:       tour.ID,
		TourName:     tour.Name,
		Date:         input.Date,
		Guests:       input.Guests,
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Note:         input.Note,
		TotalPrice:   tour.Price * int64(input.Guests),
		Status:       domain.BookingStatusPending,
		CreatedAt:    s.now(),
	}

	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("booking.SubmitBooking: %w", err)
	}

	s.log.InfoContext(ctx, "booking submitted",
		slog.String("user_id", userID.String()),
		slog.String("booking_id", created.ID.String()),
		slog.String("tour_id", created.TourID),
		slog.Int("guests", created.Guests),
		slog.Int64("total_price", created.TotalPrice))

	return created, nil
}
