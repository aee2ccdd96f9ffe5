package domain

import "github.com/google/uuid"

// UserPreferences is the preference snapshot stored on a user profile.
type UserPreferences struct {
	Categories []string `json:"categories"`
	Languages  []string `json:"languages"`
}

// User is an application user. The seed dataset carries one user, the
// default identity for anonymous requests.
type User struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar,omitempty"`
	SavedPlaces []string        `json:"savedPlaces"`
	SavedTours  []string        `json:"savedTours"`
	Preferences UserPreferences `json:"preferences"`
}
