package review

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// Review content bounds, in characters after trimming.
const (
	MinContentLength = 10
	MaxContentLength = 2000
)

// Field names reported in a ValidationError. They match the JSON keys of
// the review request and the list query parameters.
const (
	FieldTargetType = "targetType"
	FieldTargetID   = "targetId"
	FieldRating     = "rating"
	FieldContent    = "content"
)

// SubmitInput holds the fields of a review.
type SubmitInput struct {
	TargetID   string
	TargetType domain.EntityKind
	Rating     int
	Content    string
}

func (i SubmitInput) validateBody() []domain.FieldError {
	var errs []domain.FieldError

	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: FieldRating, Message: "must be between 1 and 5"})
	}

	n := utf8.RuneCountInString(strings.TrimSpace(i.Content))
	switch {
	case n < MinContentLength:
		errs = append(errs, domain.FieldError{Field: FieldContent, Message: "must be at least 10 characters"})
	case n > MaxContentLength:
		errs = append(errs, domain.FieldError{Field: FieldContent, Message: "too long"})
	}

	return errs
}

// ListInput selects the reviews of one target.
type ListInput struct {
	TargetID   string
	TargetType domain.EntityKind
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: FieldTargetType, Message: "must be place, tour, or guide"})
	}
	if strings.TrimSpace(i.TargetID) == "" {
		errs = append(errs, domain.FieldError{Field: FieldTargetID, Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
