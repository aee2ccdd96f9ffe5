package recommend

import (
	"math"
	"strings"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// Factor weights of the overlap score. They sum to 1.
const (
	weightInterest = 0.45
	weightBudget   = 0.25
	weightStyle    = 0.15
	weightDuration = 0.15

	neutral = 0.5
)

// partySize maps a travel style to the number of guests it implies.
var partySize = map[string]int{
	"solo":    1,
	"couple":  2,
	"family":  4,
	"friends": 4,
	"group":   8,
}

// overlapPercentage maps the weighted score in [0,1] onto [70,100].
func overlapPercentage(t domain.Tour, p Preferences) int {
	score := weightInterest*interestScore(t, p.Interests) +
		weightBudget*budgetScore(t.Price, p.Budget) +
		weightStyle*styleScore(t.GroupSize, p.TravelType) +
		weightDuration*durationScore(t.DurationDays, p.Duration)

	span := domain.MaxMatchPercentage - domain.MinMatchPercentage
	pct := domain.MinMatchPercentage + int(math.Round(float64(span)*score))
	return min(max(pct, domain.MinMatchPercentage), domain.MaxMatchPercentage)
}

func interestScore(t domain.Tour, interests []string) float64 {
	if len(interests) == 0 {
		return neutral
	}
	cats := make(map[string]struct{}, len(t.Categories))
	for _, c := range t.Categories {
		cats[domain.NormalizeText(c)] = struct{}{}
	}
	hit := 0
	for _, in := range interests {
		if _, ok := cats[domain.NormalizeText(in)]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(interests))
}

func budgetScore(price, budget int64) float64 {
	if budget <= 0 {
		return neutral
	}
	if price <= budget {
		return 1
	}
	return math.Max(0, 1-float64(price-budget)/float64(budget))
}

func styleScore(g domain.GroupSize, travelType string) float64 {
	n, ok := partySize[strings.ToLower(strings.TrimSpace(travelType))]
	if !ok {
		return neutral
	}
	if g.Fits(n) {
		return 1
	}
	return 0
}

func durationScore(tourDays, wanted int) float64 {
	if tourDays <= 0 || wanted <= 0 {
		return neutral
	}
	if tourDays <= wanted {
		return 1
	}
	return math.Max(0, 1-float64(tourDays-wanted)/float64(wanted))
}
