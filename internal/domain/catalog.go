package domain

import (
	"math"
	"time"
)

// Province is the administrative area every place, tour, and guide belongs to.
type Province struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Region      Region `json:"region"`
	TotalPlaces int    `json:"totalPlaces"`
	TotalTours  int    `json:"totalTours"`
	TotalGuides int    `json:"totalGuides"`
}

// Place is a point of interest: a dish, a temple, a beach, a craft village.
type Place struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     PlaceCategory `json:"category"`
	ProvinceID   string        `json:"provinceId"`
	Address      string        `json:"address"`
	Description  string        `json:"description,omitempty"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	Images       []string      `json:"images"`
	OpeningHours *string       `json:"openingHours,omitempty"`
}

// CoverImage returns the first image or "".
func (p Place) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// GroupSize bounds the number of guests a tour accepts.
type GroupSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Fits reports whether n guests are within bounds.
func (g GroupSize) Fits(n int) bool {
	return n >= g.Min && n <= g.Max
}

// ItineraryItem is one step of a tour day.
type ItineraryItem struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Location *string `json:"location,omitempty"`
}

// Tour is a bookable guided trip. Prices are integer VND.
type Tour struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ProvinceID     string          `json:"provinceId"`
	GuideID        string          `json:"guideId"`
	Description    string          `json:"description,omitempty"`
	Price          int64           `json:"price"`
	OriginalPrice  *int64          `json:"originalPrice,omitempty"`
	DurationDays   int             `json:"durationDays,omitempty"`
	GroupSize      GroupSize       `json:"groupSize"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	Images         []string        `json:"images"`
	Itinerary      []ItineraryItem `json:"itinerary"`
	Includes       []string        `json:"includes"`
	Excludes       []string        `json:"excludes"`
	AvailableDates []string        `json:"availableDates"`
	Categories     []string        `json:"categories"`
}

// Discount returns the percentage off the original price, rounded to the
// nearest integer. Zero when there is no original price.
func (t Tour) Discount() int {
	if t.OriginalPrice == nil || *t.OriginalPrice <= 0 || *t.OriginalPrice <= t.Price {
		return 0
	}
	orig := float64(*t.OriginalPrice)
	return int(math.Round((orig - float64(t.Price)) / orig * 100))
}

// CoverImage returns the first image or "".
func (t Tour) CoverImage() string {
	if len(t.Images) == 0 {
		return ""
	}
	return t.Images[0]
}

// IsAvailableOn reports whether date is one of the tour's departure dates.
func (t Tour) IsAvailableOn(date string) bool {
	for _, d := range t.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// Guide is a local guide offering tours.
type Guide struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ProvinceID   string   `json:"provinceId"`
	Avatar       string   `json:"avatar,omitempty"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	TotalTours   int      `json:"totalTours"`
	Specialties  []string `json:"specialties"`
	Languages    []string `json:"languages"`
	HourlyRate   int64    `json:"hourlyRate"`
	IsOnline     bool     `json:"isOnline"`
	IsVerified   bool     `json:"isVerified"`
	ResponseTime string   `json:"responseTime"`
}

// Comment is a reply under a post.
type Comment struct {
	ID         string `json:"id"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

// Post is a community feed entry.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	Content      string    `json:"content"`
	Images       []string  `json:"images"`
	Tags         []string  `json:"tags"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	ShareCount   int       `json:"shareCount"`
	Comments     []Comment `json:"comments"`
	CreatedAt    string    `json:"createdAt"`
}

// PostedAt parses CreatedAt as RFC 3339. Unparseable values yield the zero
// time, which sorts oldest.
func (p Post) PostedAt() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
