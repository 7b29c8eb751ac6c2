package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNews(t *testing.T, handler http.HandlerFunc) *NewsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewNewsClient("test-key", 2*time.Second)
	c.BaseURL = srv.URL
	return c
}

func TestHeadlinesNoCredential(t *testing.T) {
	c := NewNewsClient("", time.Second)
	c.BaseURL = "http://127.0.0.1:1"

	articles, err := c.Headlines(context.Background(), "Dune: Part Two")
	require.NoError(t, err)
	require.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestHeadlinesFirstPhrasingWins(t *testing.T) {
	var queries []string
	c := newTestNews(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		assert.Equal(t, newsDomains, r.URL.Query().Get("domains"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"articles": [{"title": "Review", "url": "https://variety.com/a", "source": {"name": "Variety"}, "publishedAt": "2024-03-02T10:00:00Z"}]}`))
	})

	articles, err := c.Headlines(context.Background(), "Dune: Part Two")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Variety", articles[0].Source)

	require.Len(t, queries, 1)
	assert.Equal(t, `"Dune: Part Two" movie`, queries[0])
}

func TestHeadlinesFallsThroughEmptyPhrasings(t *testing.T) {
	var hits int
	c := newTestNews(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			_, _ = w.Write([]byte(`{"articles": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"articles": [{"title": "Late hit", "url": "https://deadline.com/b"}]}`))
	})

	articles, err := c.Headlines(context.Background(), "Obscure Film")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, 3, hits)
}

func TestHeadlinesAllPhrasingsExhausted(t *testing.T) {
	var hits int
	c := newTestNews(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"articles": []}`))
	})

	articles, err := c.Headlines(context.Background(), "Obscure Film")
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Equal(t, 4, hits)
}

func TestHeadlinesProviderErrorYieldsEmpty(t *testing.T) {
	c := newTestNews(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	articles, err := c.Headlines(context.Background(), "Heat")
	require.NoError(t, err)
	require.NotNil(t, articles)
	assert.Empty(t, articles)
}
