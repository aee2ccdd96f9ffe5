package saved

import (
	"strings"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// ItemInput identifies a savable item.
type ItemInput struct {
	Kind domain.EntityKind
	ID   string
}

// Validate validates the item reference. Only places and tours can be saved.
func (i ItemInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsSavable() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be place or tour"})
	}
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Items is the current user's saved ids in save order.
type Items struct {
	Places []string `json:"places"`
	Tours  []string `json:"tours"`
}
