package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a tour reservation request submitted by a user.
type Booking struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"userId"`
	TourID       string        `json:"tourId"`
	TourName     string        `json:"tourName"`
	Date         string        `json:"date"`
	Guests       int           `json:"guests"`
	ContactName  string        `json:"contactName"`
	ContactPhone string        `json:"contactPhone"`
	Note         *string       `json:"note,omitempty"`
	TotalPrice   int64         `json:"totalPrice"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Review is a user rating of a place, tour, or guide. Submitting a review
// never changes the target's aggregate rating.
type Review struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	TargetID   string     `json:"targetId"`
	TargetType EntityKind `json:"targetType"`
	Rating     int        `json:"rating"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
}
