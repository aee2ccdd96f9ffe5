package domain

// SearchResult is one row of a unified search response.
type SearchResult struct {
	ID         string     `json:"id"`
	SourceType EntityKind `json:"sourceType"`
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Subtitle   string     `json:"subtitle"`
	Rating     float64    `json:"rating"`
}

// Match percentage bounds of a recommended tour.
const (
	MinMatchPercentage = 70
	MaxMatchPercentage = 100
)

// RecommendedTour is a tour annotated with how well it matches a user's
// stated preferences.
type RecommendedTour struct {
	Tour
	MatchPercentage int `json:"matchPercentage"`
}
