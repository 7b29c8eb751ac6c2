package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const watchmodeBase = "https://api.watchmode.com"

// DefaultAvailability is what every failed or unconfigured streaming
// lookup collapses to. Fixed so degraded mode is reproducible.
func DefaultAvailability() map[string]bool {
	return map[string]bool{"netflix": true, "hulu": false, "prime": true}
}

// serviceMapping normalizes provider service names into our canonical
// keys. Matching is by substring, in this order, first hit wins per
// source entry ("amazon prime video" must sort before "amazon prime").
var serviceMapping = []struct {
	substr string
	canon  string
}{
	{"netflix", "netflix"},
	{"hulu", "hulu"},
	{"amazon prime video", "prime"},
	{"amazon prime", "prime"},
	{"disney+", "disney"},
	{"hbo max", "hbo"},
	{"apple tv+", "apple"},
	{"peacock", "peacock"},
	{"paramount+", "paramount"},
}

// WatchmodeClient resolves streaming availability via the Watchmode
// search and sources endpoints.
type WatchmodeClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewWatchmodeClient(apiKey string, timeout time.Duration) *WatchmodeClient {
	return &WatchmodeClient{
		APIKey:  apiKey,
		BaseURL: watchmodeBase,
		Client:  &http.Client{Timeout: timeout},
	}
}

type watchmodeSearchResponse struct {
	TitleResults []struct {
		ID int `json:"id"`
	} `json:"title_results"`
}

type watchmodeSource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Availability finds the title and maps its subscription sources onto the
// canonical service set. Every failure mode (no credential, no match,
// non-success status, transport error, nothing recognized) yields the
// default availability set; the caller never sees an error it must handle
// differently.
func (w *WatchmodeClient) Availability(ctx context.Context, title string) (map[string]bool, error) {
	if w.APIKey == "" {
		return DefaultAvailability(), nil
	}

	id, err := w.searchTitle(ctx, title)
	if err != nil {
		log.Printf("[enrich] watchmode search %q: %v", title, err)
		return DefaultAvailability(), nil
	}

	sources, err := w.titleSources(ctx, id)
	if err != nil {
		log.Printf("[enrich] watchmode sources %q: %v", title, err)
		return DefaultAvailability(), nil
	}

	// Baseline keys are always present; recognized subscriptions overlay.
	avail := map[string]bool{"netflix": false, "hulu": false, "prime": false}
	found := false
	for _, src := range sources {
		if src.Type != "sub" {
			continue
		}
		name := strings.ToLower(src.Name)
		for _, m := range serviceMapping {
			if strings.Contains(name, m.substr) {
				avail[m.canon] = true
				found = true
				break
			}
		}
	}

	if !found {
		return DefaultAvailability(), nil
	}
	return avail, nil
}

func (w *WatchmodeClient) searchTitle(ctx context.Context, title string) (int, error) {
	params := url.Values{}
	params.Set("searchField", "name")
	params.Set("searchValue", title)
	params.Set("searchType", "movie")
	params.Set("apiKey", w.APIKey)

	body, err := w.get(ctx, "/v1/search", params)
	if err != nil {
		return 0, err
	}

	var res watchmodeSearchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return 0, fmt.Errorf("decode search: %w", err)
	}
	if len(res.TitleResults) == 0 {
		return 0, fmt.Errorf("no title results")
	}
	return res.TitleResults[0].ID, nil
}

func (w *WatchmodeClient) titleSources(ctx context.Context, id int) ([]watchmodeSource, error) {
	params := url.Values{}
	params.Set("apiKey", w.APIKey)

	body, err := w.get(ctx, fmt.Sprintf("/v1/title/%d/sources", id), params)
	if err != nil {
		return nil, err
	}

	var sources []watchmodeSource
	if err := json.Unmarshal(body, &sources); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}
	return sources, nil
}

func (w *WatchmodeClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s status %d", path, resp.StatusCode)
	}
	return body, nil
}
