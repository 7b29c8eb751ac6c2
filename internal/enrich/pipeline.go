// Package enrich augments catalog movies with streaming availability, news
// and trailers from independent providers. Each lookup is isolated: one
// movie's failure never degrades another's result.
package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cinequiz/pkg/models"
)

// StreamingLookup resolves which services carry a title.
type StreamingLookup interface {
	Availability(ctx context.Context, title string) (map[string]bool, error)
}

// NewsLookup finds recent trade-press coverage of a title.
type NewsLookup interface {
	Headlines(ctx context.Context, title string) ([]models.Article, error)
}

// TrailerLookup finds a playable trailer for a title. It is only used by
// the on-demand trailer endpoint, never during bulk enrichment.
type TrailerLookup interface {
	Trailer(ctx context.Context, title string) (models.Trailer, error)
}

// newsTopN: only the first results of a page get news attached. The gate
// is the movie's position in the output, not anything about the movie
// itself; that mirrors how the page presents "top picks" and is
// intentional, not an identity bug.
const newsTopN = 3

const defaultWorkers = 4

// Pipeline fans per-movie lookups out over a bounded worker pool.
type Pipeline struct {
	Streaming StreamingLookup
	News      NewsLookup
	Workers   int
}

func NewPipeline(streaming StreamingLookup, news NewsLookup) *Pipeline {
	return &Pipeline{Streaming: streaming, News: news, Workers: defaultWorkers}
}

// Enrich builds a fully-populated EnrichedMovie for every input movie.
// It never fails: lookup errors collapse to the default availability set
// and an empty news list. Output order always matches input order — each
// worker writes to its own index, so completion order cannot reorder
// results (the position-gated news lookup depends on this).
func (p *Pipeline) Enrich(ctx context.Context, movies []models.Movie) []models.EnrichedMovie {
	out := make([]models.EnrichedMovie, len(movies))

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range movies {
		g.Go(func() error {
			out[i] = p.enrichOne(gctx, m, i)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (p *Pipeline) enrichOne(ctx context.Context, movie models.Movie, position int) models.EnrichedMovie {
	em := models.EnrichedMovie{
		Movie:     movie,
		Streaming: p.availability(ctx, movie.Title),
		News:      []models.Article{},
	}

	if position < newsTopN && p.News != nil {
		if articles, err := p.News.Headlines(ctx, movie.Title); err == nil && articles != nil {
			em.News = articles
		}
	}

	return em
}

func (p *Pipeline) availability(ctx context.Context, title string) map[string]bool {
	if p.Streaming == nil {
		return DefaultAvailability()
	}
	avail, err := p.Streaming.Availability(ctx, title)
	if err != nil || avail == nil {
		return DefaultAvailability()
	}
	return avail
}
