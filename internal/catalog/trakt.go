package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cinequiz/pkg/models"
)

const traktBase = "https://api.trakt.tv"

// TraktClient talks to the Trakt catalog API. BaseURL is overridable so
// tests can point it at a local server.
type TraktClient struct {
	ClientID string
	BaseURL  string
	Client   *http.Client
}

// NewTraktClient returns a client with the given per-call timeout.
func NewTraktClient(clientID string, timeout time.Duration) *TraktClient {
	return &TraktClient{
		ClientID: clientID,
		BaseURL:  traktBase,
		Client:   &http.Client{Timeout: timeout},
	}
}

type traktMovie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   struct {
		Trakt int    `json:"trakt"`
		Slug  string `json:"slug"`
		IMDB  string `json:"imdb"`
		TMDB  int    `json:"tmdb"`
	} `json:"ids"`
}

type traktTrendingEntry struct {
	Watchers int        `json:"watchers"`
	Movie    traktMovie `json:"movie"`
}

type traktReleaseEntry struct {
	ReleaseDate string     `json:"release_date"`
	Country     string     `json:"country"`
	Movie       traktMovie `json:"movie"`
}

type traktSearchEntry struct {
	Score float64    `json:"score"`
	Movie traktMovie `json:"movie"`
}

func (m traktMovie) toModel() models.Movie {
	return models.Movie{
		Title: m.Title,
		Year:  m.Year,
		IDs: models.MovieIDs{
			Trakt: m.IDs.Trakt,
			Slug:  m.IDs.Slug,
			IMDB:  m.IDs.IMDB,
			TMDB:  m.IDs.TMDB,
		},
	}
}

// Trending returns the currently trending movies, most-watched first.
func (t *TraktClient) Trending(ctx context.Context, limit int) ([]models.Movie, error) {
	body, err := t.get(ctx, "/movies/trending", nil)
	if err != nil {
		return nil, err
	}

	var entries []traktTrendingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("trakt: decode trending: %w", err)
	}

	movies := make([]models.Movie, 0, limit)
	for _, e := range entries {
		m := e.Movie.toModel()
		m.Watchers = e.Watchers
		movies = append(movies, m)
		if len(movies) >= limit {
			break
		}
	}
	return movies, nil
}

// Popular returns the all-time popular list. Trakt serves these as bare
// movie objects, not wrapped entries.
func (t *TraktClient) Popular(ctx context.Context, limit int) ([]models.Movie, error) {
	body, err := t.get(ctx, "/movies/popular", nil)
	if err != nil {
		return nil, err
	}

	var entries []traktMovie
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("trakt: decode popular: %w", err)
	}

	movies := make([]models.Movie, 0, limit)
	for _, e := range entries {
		movies = append(movies, e.toModel())
		if len(movies) >= limit {
			break
		}
	}
	return movies, nil
}

// Releases returns recent theatrical releases with release metadata.
func (t *TraktClient) Releases(ctx context.Context, limit int) ([]models.Movie, error) {
	body, err := t.get(ctx, "/movies/releases", nil)
	if err != nil {
		return nil, err
	}

	var entries []traktReleaseEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("trakt: decode releases: %w", err)
	}

	movies := make([]models.Movie, 0, limit)
	for _, e := range entries {
		m := e.Movie.toModel()
		m.ReleaseDate = e.ReleaseDate
		m.Country = e.Country
		if m.Country == "" {
			m.Country = "US"
		}
		movies = append(movies, m)
		if len(movies) >= limit {
			break
		}
	}
	return movies, nil
}

// SearchMovies runs a text search against the movie index.
func (t *TraktClient) SearchMovies(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	body, err := t.get(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var entries []traktSearchEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("trakt: decode search: %w", err)
	}

	movies := make([]models.Movie, 0, len(entries))
	for _, e := range entries {
		movies = append(movies, e.Movie.toModel())
	}
	return movies, nil
}

func (t *TraktClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := t.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("trakt: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", t.ClientID)

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trakt: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trakt: %s status %d", path, resp.StatusCode)
	}
	return body, nil
}
