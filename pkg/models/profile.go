package models

// Profile is the personality profile computed from a quiz submission.
// Genres holds the dominant genres, at most three, strongest first.
// Immutable once computed; it rides in the session token between requests.
type Profile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}
