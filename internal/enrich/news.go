package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"cinequiz/pkg/models"
)

const newsBase = "https://newsapi.org"

// newsDomains restricts results to trade press so a generic movie title
// doesn't pull in unrelated coverage.
const newsDomains = "variety.com,hollywoodreporter.com,indiewire.com,deadline.com,thewrap.com"

const newsPageSize = 3

// NewsClient searches NewsAPI for recent articles about a movie.
type NewsClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewNewsClient(apiKey string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		APIKey:  apiKey,
		BaseURL: newsBase,
		Client:  &http.Client{Timeout: timeout},
	}
}

type newsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Headlines tries increasingly permissive query phrasings and returns the
// first non-empty article set. No credential, no hits anywhere, or an
// error all yield an empty list — news is strictly optional enrichment.
func (n *NewsClient) Headlines(ctx context.Context, title string) ([]models.Article, error) {
	if n.APIKey == "" {
		return []models.Article{}, nil
	}

	queries := []string{
		fmt.Sprintf("%q movie", title),
		fmt.Sprintf("%q film", title),
		fmt.Sprintf("%q cinema", title),
		fmt.Sprintf("%q", title),
	}

	for _, q := range queries {
		articles, err := n.search(ctx, q)
		if err != nil {
			log.Printf("[enrich] news query %s: %v", q, err)
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	return []models.Article{}, nil
}

func (n *NewsClient) search(ctx context.Context, query string) ([]models.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", n.APIKey)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", newsPageSize))
	params.Set("domains", newsDomains)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var res newsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	articles := make([]models.Article, 0, len(res.Articles))
	for _, a := range res.Articles {
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
