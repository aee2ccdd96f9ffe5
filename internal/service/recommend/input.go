package recommend

// MaxInterests bounds the interest list; extra entries are ignored.
const MaxInterests = 20

// Preferences is the traveler's stated profile. Zero or negative values mean
// "no preference" for the corresponding factor.
type Preferences struct {
	Interests  []string
	TravelType string
	Budget     int64
	Duration   int
}

// normalized clamps negative budget and duration to zero and caps the
// interest list, so every input scores.
func (p Preferences) normalized() Preferences {
	p.Budget = max(p.Budget, 0)
	p.Duration = max(p.Duration, 0)
	if len(p.Interests) > MaxInterests {
		p.Interests = p.Interests[:MaxInterests]
	}
	return p
}
