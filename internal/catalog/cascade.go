// Package catalog fetches movie lists from upstream catalog providers,
// falling through an ordered set of strategies and degrading to a static
// catalog when everything upstream is unavailable.
package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cinequiz/pkg/models"
)

// Criteria is what a fetch strategy may act on. List-shaped strategies
// (trending, popular, releases) ignore it entirely.
type Criteria struct {
	Genres []string
	Query  string
}

// Source is implemented by each catalog fetch strategy. A Source owns its
// own request shape and maps the provider response into Movie.
type Source interface {
	Name() string
	Fetch(ctx context.Context, crit Criteria) ([]models.Movie, error)
}

const (
	// fetchThreshold is when the recommendation cascade stops trying
	// further strategies.
	fetchThreshold = 10
	// maxResults caps what any cascade mode returns.
	maxResults = 15
	// searchFilterCap bounds client-side substring filtering.
	searchFilterCap = 10

	defaultGenre = "drama"
)

// Cascade tries catalog strategies in a fixed priority order. It never
// fails outward: strategy errors are logged, counted as zero movies, and
// the static mock catalog backstops the whole chain.
type Cascade struct {
	recommend []Source // trending, popular, releases, search-by-genre
	releases  []Source // releases, trending, popular
	search    Source
	popular   Source
}

// NewCascade wires the live strategy chains. A nil client or empty
// credential leaves the chains empty, which puts every mode in degraded
// (mock) mode without attempting network calls.
func NewCascade(client *TraktClient) *Cascade {
	if client == nil || client.ClientID == "" {
		return &Cascade{}
	}

	trending := &trendingSource{c: client}
	popular := &popularSource{c: client}
	releases := &releasesSource{c: client}

	return &Cascade{
		recommend: []Source{trending, popular, releases, &genreSearchSource{c: client}},
		releases:  []Source{releases, trending, popular},
		search:    &querySearchSource{c: client},
		popular:   popular,
	}
}

// FetchByGenres gathers recommendations for the given dominant genres.
// Strategies accumulate until the threshold is reached; every returned
// movie is tagged with the first requested genre, since the upstream lists
// carry catalog position rather than curated genre metadata.
func (c *Cascade) FetchByGenres(ctx context.Context, genres []string) []models.Movie {
	if len(c.recommend) == 0 {
		log.Printf("[catalog] no provider configured, using mock recommendations")
		return MockRecommendations()
	}

	tag := defaultGenre
	if len(genres) > 0 {
		tag = genres[0]
	}
	crit := Criteria{Genres: genres}

	var out []models.Movie
	seen := make(map[string]bool)

	for _, src := range c.recommend {
		movies, err := src.Fetch(ctx, crit)
		if err != nil {
			log.Printf("[catalog] source %s error: %v", src.Name(), err)
			continue
		}
		for _, m := range movies {
			key := identityKey(m)
			if seen[key] {
				continue
			}
			seen[key] = true
			m.Genre = tag
			out = append(out, m)
		}
		if len(out) >= fetchThreshold {
			break
		}
	}

	if len(out) == 0 {
		log.Printf("[catalog] all sources exhausted, using mock recommendations")
		return MockRecommendations()
	}
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// FetchNew gathers recent releases. Unlike FetchByGenres this is
// first-success-wins: the first strategy yielding anything ends the chain.
func (c *Cascade) FetchNew(ctx context.Context) []models.Movie {
	if len(c.releases) == 0 {
		log.Printf("[catalog] no provider configured, using mock new releases")
		return MockNewReleases()
	}

	for _, src := range c.releases {
		movies, err := src.Fetch(ctx, Criteria{})
		if err != nil {
			log.Printf("[catalog] source %s error: %v", src.Name(), err)
			continue
		}
		if len(movies) == 0 {
			continue
		}
		for i := range movies {
			movies[i].Genre = "new_release"
		}
		if len(movies) > maxResults {
			movies = movies[:maxResults]
		}
		return movies
	}

	log.Printf("[catalog] all sources exhausted, using mock new releases")
	return MockNewReleases()
}

// Search looks a query up against the provider's search index, degrading
// first to a client-side filter over the popular list, then to the static
// seed catalog. Unlike the other modes an empty result is a valid answer.
func (c *Cascade) Search(ctx context.Context, query string) []models.Movie {
	if c.search == nil {
		return filterByTitle(MockSearchSeed(), query, searchFilterCap)
	}

	movies, err := c.search.Fetch(ctx, Criteria{Query: query})
	if err != nil {
		log.Printf("[catalog] search error: %v", err)
		movies = c.searchViaPopular(ctx, query)
	}

	for i := range movies {
		movies[i].Genre = "search_result"
	}
	if len(movies) == 0 {
		return filterByTitle(MockSearchSeed(), query, searchFilterCap)
	}
	return movies
}

func (c *Cascade) searchViaPopular(ctx context.Context, query string) []models.Movie {
	popular, err := c.popular.Fetch(ctx, Criteria{})
	if err != nil {
		log.Printf("[catalog] source %s error: %v", c.popular.Name(), err)
		return nil
	}
	return filterByTitle(popular, query, searchFilterCap)
}

// filterByTitle keeps movies whose title contains the query,
// case-insensitively, up to limit matches.
func filterByTitle(movies []models.Movie, query string, limit int) []models.Movie {
	q := strings.ToLower(query)
	out := make([]models.Movie, 0, limit)
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// identityKey groups entries describing the same movie across strategies.
func identityKey(m models.Movie) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(m.Title), m.Year)
}

// The live strategies. Fetch limits follow the shares each endpoint
// contributed in the original cascade.

type trendingSource struct{ c *TraktClient }

func (s *trendingSource) Name() string { return "trending" }

func (s *trendingSource) Fetch(ctx context.Context, _ Criteria) ([]models.Movie, error) {
	return s.c.Trending(ctx, 20)
}

type popularSource struct{ c *TraktClient }

func (s *popularSource) Name() string { return "popular" }

func (s *popularSource) Fetch(ctx context.Context, _ Criteria) ([]models.Movie, error) {
	return s.c.Popular(ctx, 15)
}

type releasesSource struct{ c *TraktClient }

func (s *releasesSource) Name() string { return "releases" }

func (s *releasesSource) Fetch(ctx context.Context, _ Criteria) ([]models.Movie, error) {
	return s.c.Releases(ctx, 10)
}

type genreSearchSource struct{ c *TraktClient }

func (s *genreSearchSource) Name() string { return "genre-search" }

func (s *genreSearchSource) Fetch(ctx context.Context, crit Criteria) ([]models.Movie, error) {
	genre := defaultGenre
	if len(crit.Genres) > 0 {
		genre = crit.Genres[0]
	}
	return s.c.SearchMovies(ctx, genre, 20)
}

type querySearchSource struct{ c *TraktClient }

func (s *querySearchSource) Name() string { return "search" }

func (s *querySearchSource) Fetch(ctx context.Context, crit Criteria) ([]models.Movie, error) {
	return s.c.SearchMovies(ctx, crit.Query, 20)
}
