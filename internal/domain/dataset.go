package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Dataset is the full set of seed records a catalog is built from.
type Dataset struct {
	Provinces []Province `json:"provinces"`
	Places    []Place    `json:"places"`
	Tours     []Tour     `json:"tours"`
	Guides    []Guide    `json:"guides"`
	Posts     []Post     `json:"posts"`
	User      User       `json:"user"`
}

// Validate checks referential integrity and numeric ranges of every record
// and collects all problems.
func (d *Dataset) Validate() error {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	provinces := make(map[string]struct{}, len(d.Provinces))
	for i, p := range d.Provinces {
		field := fmt.Sprintf("provinces[%d]", i)
		if p.ID == "" {
			add(field, "id required")
			continue
		}
		if _, dup := provinces[p.ID]; dup {
			add(field, "duplicate id %q", p.ID)
		}
		provinces[p.ID] = struct{}{}
		if !p.Region.IsValid() {
			add(field, "invalid region %q", p.Region)
		}
	}

	checkProvince := func(field, id string) {
		if _, ok := provinces[id]; !ok {
			add(field, "unknown province %q", id)
		}
	}
	checkRating := func(field string, rating float64, reviews int) {
		if rating < 0 || rating > 5 {
			add(field, "rating %.1f out of range [0,5]", rating)
		}
		if reviews < 0 {
			add(field, "review count must be non-negative")
		}
	}

	guides := make(map[string]struct{}, len(d.Guides))
	for i, g := range d.Guides {
		field := fmt.Sprintf("guides[%d]", i)
		if g.ID == "" {
			add(field, "id required")
			continue
		}
		if _, dup := guides[g.ID]; dup {
			add(field, "duplicate id %q", g.ID)
		}
		guides[g.ID] = struct{}{}
		checkProvince(field, g.ProvinceID)
		checkRating(field, g.Rating, g.ReviewCount)
	}

	places := make(map[string]struct{}, len(d.Places))
	for i, p := range d.Places {
		field := fmt.Sprintf("places[%d]", i)
		if p.ID == "" {
			add(field, "id required")
			continue
		}
		if _, dup := places[p.ID]; dup {
			add(field, "duplicate id %q", p.ID)
		}
		places[p.ID] = struct{}{}
		if !p.Category.IsValid() {
			add(field, "invalid category %q", p.Category)
		}
		checkProvince(field, p.ProvinceID)
		checkRating(field, p.Rating, p.ReviewCount)
	}

	tours := make(map[string]struct{}, len(d.Tours))
	for i, t := range d.Tours {
		field := fmt.Sprintf("tours[%d]", i)
		if t.ID == "" {
			add(field, "id required")
			continue
		}
		if _, dup := tours[t.ID]; dup {
			add(field, "duplicate id %q", t.ID)
		}
		tours[t.ID] = struct{}{}
		checkProvince(field, t.ProvinceID)
		if _, ok := guides[t.GuideID]; !ok {
			add(field, "unknown guide %q", t.GuideID)
		}
		if t.Price <= 0 {
			add(field, "price must be positive")
		}
		if t.OriginalPrice != nil && *t.OriginalPrice < t.Price {
			add(field, "original price below price")
		}
		if t.GroupSize.Min < 1 || t.GroupSize.Min > t.GroupSize.Max {
			add(field, "invalid group size %d-%d", t.GroupSize.Min, t.GroupSize.Max)
		}
		if t.DurationDays < 0 {
			add(field, "duration must be non-negative")
		}
		checkRating(field, t.Rating, t.ReviewCount)
	}

	posts := make(map[string]struct{}, len(d.Posts))
	for i, p := range d.Posts {
		field := fmt.Sprintf("posts[%d]", i)
		if p.ID == "" {
			add(field, "id required")
			continue
		}
		if _, dup := posts[p.ID]; dup {
			add(field, "duplicate id %q", p.ID)
		}
		posts[p.ID] = struct{}{}
		if _, err := time.Parse(time.RFC3339, p.CreatedAt); err != nil {
			add(field, "createdAt %q is not RFC 3339", p.CreatedAt)
		}
	}

	if d.User.ID == uuid.Nil {
		add("user", "id required")
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
