package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/booking"
)

type bookingService interface {
	SubmitBooking(ctx context.Context, input booking.SubmitInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// BookingHandler serves tour bookings of the current user.
type BookingHandler struct {
	bookings bookingService
	log      *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(s bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{bookings: s, log: logger.With("handler", "booking")}
}

type bookingRequest struct {
	TourID       string  `json:"tourId"`
	Date         string  `json:"date"`
	Guests       int     `json:"guests"`
	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	Note         *string `json:"note"`
}

// Submit handles POST /api/bookings.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	b, err := h.bookings.SubmitBooking(r.Context(), booking.SubmitInput{
		TourID:       req.TourID,
		Date:         req.Date,
		Guests:       req.Guests,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Note:         req.Note,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookings.ListBookings(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": list})
}

// Get handles GET /api/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	b, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Cancel handles POST /api/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	b, err := h.bookings.CancelBooking(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) bookingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, badRequest("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
