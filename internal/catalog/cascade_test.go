package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinequiz/pkg/models"
)

// fakeSource counts calls and serves a canned response or error.
type fakeSource struct {
	name   string
	movies []models.Movie
	err    error
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context, _ Criteria) ([]models.Movie, error) {
	f.calls++
	return f.movies, f.err
}

func titled(n int, prefix string) []models.Movie {
	movies := make([]models.Movie, n)
	for i := range movies {
		movies[i] = models.Movie{Title: fmt.Sprintf("%s %d", prefix, i), Year: 2000 + i}
	}
	return movies
}

func TestFetchByGenresFallsThroughFailedStrategies(t *testing.T) {
	first := &fakeSource{name: "trending", err: errors.New("status 503")}
	second := &fakeSource{name: "popular", err: errors.New("status 503")}
	third := &fakeSource{name: "releases", movies: titled(12, "Release")}
	fourth := &fakeSource{name: "genre-search", movies: titled(5, "Extra")}

	c := &Cascade{recommend: []Source{first, second, third, fourth}}
	got := c.FetchByGenres(context.Background(), []string{"thriller", "mystery"})

	require.Len(t, got, 12)
	for _, m := range got {
		assert.Equal(t, "thriller", m.Genre)
	}
	assert.Equal(t, 1, third.calls)
	assert.Zero(t, fourth.calls, "threshold reached, fourth strategy must not be called")
}

func TestFetchByGenresStopsAtThreshold(t *testing.T) {
	first := &fakeSource{name: "trending", movies: titled(4, "A")}
	second := &fakeSource{name: "popular", movies: titled(4, "B")}
	third := &fakeSource{name: "releases", movies: titled(4, "C")}
	fourth := &fakeSource{name: "genre-search", movies: titled(4, "D")}

	c := &Cascade{recommend: []Source{first, second, third, fourth}}
	got := c.FetchByGenres(context.Background(), []string{"action"})

	// 4+4+4 = 12 >= threshold after the third strategy.
	assert.Len(t, got, 12)
	assert.Zero(t, fourth.calls)
}

func TestFetchByGenresDeduplicatesByTitleYear(t *testing.T) {
	dup := models.Movie{Title: "Heat", Year: 1995}
	first := &fakeSource{name: "trending", movies: []models.Movie{dup, {Title: "Ronin", Year: 1998}}}
	second := &fakeSource{name: "popular", movies: []models.Movie{dup, {Title: "Collateral", Year: 2004}}}

	c := &Cascade{recommend: []Source{first, second}}
	got := c.FetchByGenres(context.Background(), []string{"crime"})

	assert.Len(t, got, 3)
}

func TestFetchByGenresTruncatesToFifteen(t *testing.T) {
	big := &fakeSource{name: "trending", movies: titled(20, "Movie")}

	c := &Cascade{recommend: []Source{big}}
	got := c.FetchByGenres(context.Background(), nil)

	assert.Len(t, got, 15)
	assert.Equal(t, "drama", got[0].Genre, "empty genre list tags with the default genre")
}

func TestFetchByGenresNoCredentialUsesMock(t *testing.T) {
	c := NewCascade(nil)
	got := c.FetchByGenres(context.Background(), []string{"horror"})

	require.Len(t, got, 5)
	assert.Equal(t, "Inception", got[0].Title)
	// Mock titles keep their own genres; they are not retagged.
	assert.Equal(t, "sci-fi", got[0].Genre)
	assert.Equal(t, MockRecommendations(), got)
}

func TestFetchByGenresAllStrategiesEmptyUsesMock(t *testing.T) {
	c := &Cascade{recommend: []Source{
		&fakeSource{name: "trending", err: errors.New("timeout")},
		&fakeSource{name: "popular"},
	}}
	got := c.FetchByGenres(context.Background(), []string{"drama"})
	assert.Equal(t, MockRecommendations(), got)
}

func TestFetchNewFirstSuccessWins(t *testing.T) {
	releases := &fakeSource{name: "releases", err: errors.New("status 500")}
	trending := &fakeSource{name: "trending", movies: titled(3, "Fresh")}
	popular := &fakeSource{name: "popular", movies: titled(3, "Stale")}

	c := &Cascade{releases: []Source{releases, trending, popular}}
	got := c.FetchNew(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, "Fresh 0", got[0].Title)
	assert.Equal(t, "new_release", got[0].Genre)
	assert.Zero(t, popular.calls, "first success must short-circuit later strategies")
}

func TestFetchNewAllFailUsesMock(t *testing.T) {
	c := &Cascade{releases: []Source{
		&fakeSource{name: "releases", err: errors.New("boom")},
		&fakeSource{name: "trending"},
		&fakeSource{name: "popular", err: errors.New("boom")},
	}}
	got := c.FetchNew(context.Background())
	assert.Equal(t, MockNewReleases(), got)
}

func TestSearchDirectHit(t *testing.T) {
	direct := &fakeSource{name: "search", movies: titled(2, "Blade Runner")}
	c := &Cascade{search: direct}

	got := c.Search(context.Background(), "blade")
	require.Len(t, got, 2)
	assert.Equal(t, "search_result", got[0].Genre)
}

func TestSearchDegradesToPopularFilter(t *testing.T) {
	direct := &fakeSource{name: "search", err: errors.New("status 429")}
	popular := &fakeSource{name: "popular", movies: []models.Movie{
		{Title: "The Godfather", Year: 1972},
		{Title: "GoodFellas", Year: 1990},
		{Title: "Casino", Year: 1995},
	}}
	c := &Cascade{search: direct, popular: popular}

	got := c.Search(context.Background(), "good")
	require.Len(t, got, 1)
	assert.Equal(t, "GoodFellas", got[0].Title)
	assert.Equal(t, "search_result", got[0].Genre)
}

func TestSearchFallsBackToMockSeed(t *testing.T) {
	direct := &fakeSource{name: "search", err: errors.New("down")}
	popular := &fakeSource{name: "popular", err: errors.New("down")}
	c := &Cascade{search: direct, popular: popular}

	got := c.Search(context.Background(), "Inception")
	require.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Title)
}

func TestSearchMockSeedNoMatch(t *testing.T) {
	c := NewCascade(nil)

	got := c.Search(context.Background(), "Inception")
	require.Len(t, got, 1)
	assert.Equal(t, 2010, got[0].Year)

	got = c.Search(context.Background(), "nonexistent-title-xyz")
	assert.Empty(t, got)
}

func TestMockCatalogsAreStable(t *testing.T) {
	first := MockRecommendations()
	first[0].Title = "mutated"
	assert.Equal(t, "Inception", MockRecommendations()[0].Title)

	assert.Equal(t, MockNewReleases(), MockNewReleases())
	assert.Len(t, MockSearchSeed(), 10)
}
