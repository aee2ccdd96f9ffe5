package search

import (
	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// MaxQueryLength bounds the normalized query in characters. Longer queries
// are truncated, never rejected.
const MaxQueryLength = 200

// Input holds parameters for a search.
type Input struct {
	Query string
	Type  domain.SearchType
}

// query returns the normalized query capped at MaxQueryLength runes.
// Unknown types are not an error; they are treated as all.
func (i Input) query() string {
	q := domain.NormalizeText(i.Query)
	if r := []rune(q); len(r) > MaxQueryLength {
		q = string(r[:MaxQueryLength])
	}
	return q
}

// Result is the response of a search. Searched is false when the query was
// empty after normalization, so callers can tell "nothing asked" from
// "nothing found".
type Result struct {
	Searched bool                  `json:"searched"`
	Results  []domain.SearchResult `json:"results"`
}
