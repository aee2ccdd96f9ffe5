package catalog

import (
	"strings"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// SortBy orders list results. The zero value keeps collection order.
type SortBy string

const (
	SortNone      SortBy = ""
	SortRating    SortBy = "rating"
	SortReviews   SortBy = "reviews"
	SortPriceAsc  SortBy = "price_asc"
	SortPriceDesc SortBy = "price_desc"
)

func (s SortBy) validFor(withPrice bool) bool {
	switch s {
	case SortNone, SortRating, SortReviews:
		return true
	case SortPriceAsc, SortPriceDesc:
		return withPrice
	}
	return false
}

// PlaceFilter narrows ListPlaces.
type PlaceFilter struct {
	Category   domain.PlaceCategory
	ProvinceID string
	MinRating  float64
	SortBy     SortBy
}

func (f PlaceFilter) Validate() error {
	var errs []domain.FieldError

	if f.Category != "" && !f.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		errs = append(errs, domain.FieldError{Field: "minRating", Message: "must be between 0 and 5"})
	}
	if !f.SortBy.validFor(false) {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be rating or reviews"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TourFilter narrows ListTours. Zero price bounds are ignored.
type TourFilter struct {
	ProvinceID string
	Category   string
	MinPrice   int64
	MaxPrice   int64
	SortBy     SortBy
}

func (f TourFilter) Validate() error {
	var errs []domain.FieldError

	if f.MinPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "minPrice", Message: "must not be negative"})
	}
	if f.MaxPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "maxPrice", Message: "must not be negative"})
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		errs = append(errs, domain.FieldError{Field: "maxPrice", Message: "must not be below minPrice"})
	}
	if !f.SortBy.validFor(true) {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be rating, reviews, price_asc, or price_desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GuideFilter narrows ListGuides.
type GuideFilter struct {
	ProvinceID   string
	Language     string
	Specialty    string
	OnlineOnly   bool
	VerifiedOnly bool
	SortBy       SortBy
}

func (f GuideFilter) Validate() error {
	if !f.SortBy.validFor(false) {
		return domain.NewValidationError("sort", "must be rating or reviews")
	}
	return nil
}

// PostFilter narrows ListPosts. Tag matches with or without a leading '#'.
type PostFilter struct {
	Tag string
}

func (f PostFilter) tag() string {
	return domain.NormalizeText(strings.TrimPrefix(strings.TrimSpace(f.Tag), "#"))
}
