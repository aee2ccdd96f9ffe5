package booking

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// MinPhoneDigits is the minimum number of digits in a contact phone.
const MinPhoneDigits = 10

// Field names reported in a ValidationError. They match the JSON keys of
// the booking request body.
const (
	FieldTourID       = "tourId"
	FieldDate         = "date"
	FieldGuests       = "guests"
	FieldContactName  = "contactName"
	FieldContactPhone = "contactPhone"
	FieldNote         = "note"
)

// SubmitInput holds the fields of a booking request.
type SubmitInput struct {
	TourID       string
	Date         string
	Guests       int
	ContactName  string
	ContactPhone string
	Note         *string
}

// validateContact checks the fields that do not depend on the tour.
func (i SubmitInput) validateContact() []domain.FieldError {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ContactName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: FieldContactName, Message: "required"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: FieldContactName, Message: "too long"})
	}

	if countDigits(i.ContactPhone) < MinPhoneDigits {
		errs = append(errs, domain.FieldError{Field: FieldContactPhone, Message: "must contain at least 10 digits"})
	}

	if i.Note != nil && utf8.RuneCountInString(*i.Note) > 500 {
		errs = append(errs, domain.FieldError{Field: FieldNote, Message: "too long"})
	}

	return errs
}

// validateAgainst checks the date and party size against the tour.
func (i SubmitInput) validateAgainst(t *domain.Tour) []domain.FieldError {
	var errs []domain.FieldError

	if !t.IsAvailableOn(i.Date) {
		errs = append(errs, domain.FieldError{Field: FieldDate, Message: "not an available date for this tour"})
	}
	if !t.GroupSize.Fits(i.Guests) {
		errs = append(errs, domain.FieldError{
			Field:   FieldGuests,
			Message: fmt.Sprintf("must be between %d and %d", t.GroupSize.Min, t.GroupSize.Max),
		})
	}

	return errs
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
