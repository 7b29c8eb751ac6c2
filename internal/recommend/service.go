// Package recommend is the aggregation facade: it strings scoring output,
// the catalog cascade and the enrichment pipeline together for the HTTP
// layer. It holds no state beyond the collaborators it is wired with.
package recommend

import (
	"context"

	"cinequiz/internal/enrich"
	"cinequiz/pkg/models"
)

// Catalog is the cascade capability the facade consumes.
type Catalog interface {
	FetchByGenres(ctx context.Context, genres []string) []models.Movie
	FetchNew(ctx context.Context) []models.Movie
	Search(ctx context.Context, query string) []models.Movie
}

// Enricher attaches streaming and news data to a fetched movie list.
type Enricher interface {
	Enrich(ctx context.Context, movies []models.Movie) []models.EnrichedMovie
}

type Service struct {
	Catalog   Catalog
	Enricher  Enricher
	Streaming enrich.StreamingLookup
	Trailers  enrich.TrailerLookup
}

func NewService(catalog Catalog, enricher Enricher, streaming enrich.StreamingLookup, trailers enrich.TrailerLookup) *Service {
	return &Service{
		Catalog:   catalog,
		Enricher:  enricher,
		Streaming: streaming,
		Trailers:  trailers,
	}
}

// Recommendations is the main path: dominant genres in, enriched movie
// list out. Degradation happens inside the collaborators; this never
// fails.
func (s *Service) Recommendations(ctx context.Context, profile models.Profile) []models.EnrichedMovie {
	movies := s.Catalog.FetchByGenres(ctx, profile.Genres)
	return s.Enricher.Enrich(ctx, movies)
}

// NewReleases returns the enriched latest-releases list.
func (s *Service) NewReleases(ctx context.Context) []models.EnrichedMovie {
	return s.Enricher.Enrich(ctx, s.Catalog.FetchNew(ctx))
}

// MoviesByGenre serves the raw catalog for one genre; the JSON movie API
// skips enrichment, matching what its consumers need.
func (s *Service) MoviesByGenre(ctx context.Context, genre string) []models.Movie {
	return s.Catalog.FetchByGenres(ctx, []string{genre})
}

// Search runs the degrading catalog search.
func (s *Service) Search(ctx context.Context, query string) []models.Movie {
	return s.Catalog.Search(ctx, query)
}

// StreamingInfo is the single-title availability lookup.
func (s *Service) StreamingInfo(ctx context.Context, title string) map[string]bool {
	if s.Streaming == nil {
		return enrich.DefaultAvailability()
	}
	avail, err := s.Streaming.Availability(ctx, title)
	if err != nil || avail == nil {
		return enrich.DefaultAvailability()
	}
	return avail
}

// TrailerInfo is the on-demand trailer lookup.
func (s *Service) TrailerInfo(ctx context.Context, title string) (models.Trailer, error) {
	if s.Trailers == nil {
		return models.Trailer{Title: title, Available: false}, nil
	}
	return s.Trailers.Trailer(ctx, title)
}
