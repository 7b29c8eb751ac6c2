package catalog

import "cinequiz/pkg/models"

// Static fallback catalogs served whenever no Trakt credential is
// configured or every live strategy comes back empty. All three sets are
// fixed so degraded mode stays reproducible; each call hands out a fresh
// copy so callers can't mutate the seed data.

var mockRecommendations = []models.Movie{
	{Title: "Inception", Year: 2010, Genre: "sci-fi"},
	{Title: "The Shawshank Redemption", Year: 1994, Genre: "drama"},
	{Title: "The Dark Knight", Year: 2008, Genre: "action"},
	{Title: "Pulp Fiction", Year: 1994, Genre: "crime"},
	{Title: "Forrest Gump", Year: 1994, Genre: "drama"},
}

var mockNewReleases = []models.Movie{
	{Title: "Dune: Part Two", Year: 2024, Genre: "sci-fi", ReleaseDate: "2024-03-01", Country: "US"},
	{Title: "Poor Things", Year: 2024, Genre: "drama", ReleaseDate: "2024-01-26", Country: "US"},
	{Title: "The Zone of Interest", Year: 2024, Genre: "drama", ReleaseDate: "2024-02-02", Country: "US"},
	{Title: "Killers of the Flower Moon", Year: 2023, Genre: "drama", ReleaseDate: "2023-10-20", Country: "US"},
	{Title: "Oppenheimer", Year: 2023, Genre: "drama", ReleaseDate: "2023-07-21", Country: "US"},
}

var mockSearchSeed = []models.Movie{
	{Title: "Inception", Year: 2010, Genre: "sci-fi"},
	{Title: "The Dark Knight", Year: 2008, Genre: "action"},
	{Title: "Pulp Fiction", Year: 1994, Genre: "crime"},
	{Title: "Forrest Gump", Year: 1994, Genre: "drama"},
	{Title: "The Shawshank Redemption", Year: 1994, Genre: "drama"},
	{Title: "Fight Club", Year: 1999, Genre: "drama"},
	{Title: "The Matrix", Year: 1999, Genre: "sci-fi"},
	{Title: "Goodfellas", Year: 1990, Genre: "crime"},
	{Title: "The Silence of the Lambs", Year: 1991, Genre: "thriller"},
	{Title: "Schindler's List", Year: 1993, Genre: "drama"},
}

// MockRecommendations is the degraded-mode recommendation set.
func MockRecommendations() []models.Movie {
	return copyMovies(mockRecommendations)
}

// MockNewReleases is the degraded-mode new-releases set.
func MockNewReleases() []models.Movie {
	return copyMovies(mockNewReleases)
}

// MockSearchSeed is the catalog degraded-mode searches filter against.
func MockSearchSeed() []models.Movie {
	return copyMovies(mockSearchSeed)
}

func copyMovies(src []models.Movie) []models.Movie {
	out := make([]models.Movie, len(src))
	copy(out, src)
	return out
}
