package models

// MovieIDs carries the identifiers a catalog provider knows a movie by.
// Not every provider fills every field; Trakt gives all four.
type MovieIDs struct {
	Trakt int    `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int    `json:"tmdb,omitempty"`
}

// Movie is the normalized catalog record all provider responses are mapped
// into before enrichment. Two entries describe the same movie when their
// (Title, Year) pair matches.
//
// Genre is the tag the cascade assigns from the requested genre list, not
// the movie's real genre: catalog providers return list position, not
// curated genre metadata, so we label results with what the caller asked
// for. Do not treat it as authoritative.
type Movie struct {
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	IDs         MovieIDs `json:"ids,omitempty"`
	Genre       string   `json:"genre"`
	Watchers    int      `json:"watchers,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Country     string   `json:"country,omitempty"`
}

// EnrichedMovie is a Movie plus the auxiliary data the enrichment pipeline
// attaches. Streaming and News are always non-nil: a failed lookup
// substitutes defaults, it never leaves a hole.
type EnrichedMovie struct {
	Movie
	Streaming map[string]bool `json:"streaming"`
	News      []Article       `json:"news"`
}

// Article is a single news item about a movie.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Trailer is the result of an on-demand trailer lookup. URL is empty when
// Available is false.
type Trailer struct {
	URL       string `json:"url,omitempty"`
	Title     string `json:"title"`
	Available bool   `json:"available"`
}
