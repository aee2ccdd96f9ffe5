package domain

// Region groups provinces into the three parts of the country.
type Region string

const (
	RegionNorth   Region = "north"
	RegionCentral Region = "central"
	RegionSouth   Region = "south"
)

func (r Region) String() string { return string(r) }

func (r Region) IsValid() bool {
	switch r {
	case RegionNorth, RegionCentral, RegionSouth:
		return true
	}
	return false
}

// PlaceCategory classifies a place.
type PlaceCategory string

const (
	PlaceCategoryFood         PlaceCategory = "food"
	PlaceCategoryHeritage     PlaceCategory = "heritage"
	PlaceCategoryTemple       PlaceCategory = "temple"
	PlaceCategoryFestival     PlaceCategory = "festival"
	PlaceCategoryCraftVillage PlaceCategory = "craft_village"
	PlaceCategoryBeach        PlaceCategory = "beach"
	PlaceCategoryShopping     PlaceCategory = "shopping"
	PlaceCategoryNature       PlaceCategory = "nature"
)

func (c PlaceCategory) String() string { return string(c) }

func (c PlaceCategory) IsValid() bool {
	switch c {
	case PlaceCategoryFood, PlaceCategoryHeritage, PlaceCategoryTemple, PlaceCategoryFestival,
		PlaceCategoryCraftVillage, PlaceCategoryBeach, PlaceCategoryShopping, PlaceCategoryNature:
		return true
	}
	return false
}

// EntityKind identifies one of the searchable or reviewable collections.
type EntityKind string

const (
	EntityKindPlace EntityKind = "place"
	EntityKindTour  EntityKind = "tour"
	EntityKindGuide EntityKind = "guide"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindPlace, EntityKindTour, EntityKindGuide:
		return true
	}
	return false
}

// IsSavable reports whether items of this kind can be saved by a user.
func (k EntityKind) IsSavable() bool {
	return k == EntityKindPlace || k == EntityKindTour
}

// SearchType is the type filter of a search request.
type SearchType string

const (
	SearchTypeAll   SearchType = "all"
	SearchTypePlace SearchType = "place"
	SearchTypeTour  SearchType = "tour"
	SearchTypeGuide SearchType = "guide"
)

func (t SearchType) String() string { return string(t) }

// Normalize maps unknown or empty filters to SearchTypeAll.
func (t SearchType) Normalize() SearchType {
	switch t {
	case SearchTypePlace, SearchTypeTour, SearchTypeGuide:
		return t
	}
	return SearchTypeAll
}

// Includes reports whether results of kind k pass this filter.
func (t SearchType) Includes(k EntityKind) bool {
	n := t.Normalize()
	return n == SearchTypeAll || string(n) == string(k)
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
