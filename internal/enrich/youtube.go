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

const youtubeBase = "https://www.googleapis.com/youtube/v3"

// YouTubeClient finds an embeddable official trailer for a title.
type YouTubeClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewYouTubeClient(apiKey string, timeout time.Duration) *YouTubeClient {
	return &YouTubeClient{
		APIKey:  apiKey,
		BaseURL: youtubeBase,
		Client:  &http.Client{Timeout: timeout},
	}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// Trailer searches for "<title> official trailer" and returns the first
// embeddable hit. No credential, no match, or any error comes back as an
// explicit unavailable result rather than a failure.
func (y *YouTubeClient) Trailer(ctx context.Context, title string) (models.Trailer, error) {
	unavailable := models.Trailer{Title: title, Available: false}

	if y.APIKey == "" {
		log.Printf("[enrich] no YouTube credential, trailer lookup skipped")
		return unavailable, nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", title+" official trailer")
	params.Set("key", y.APIKey)
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("videoEmbeddable", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return unavailable, nil
	}

	resp, err := y.Client.Do(req)
	if err != nil {
		log.Printf("[enrich] trailer request %q: %v", title, err)
		return unavailable, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[enrich] trailer search %q: status %d", title, resp.StatusCode)
		return unavailable, nil
	}

	var res youtubeSearchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		log.Printf("[enrich] trailer decode %q: %v", title, err)
		return unavailable, nil
	}

	if len(res.Items) == 0 || res.Items[0].ID.VideoID == "" {
		log.Printf("[enrich] no trailer found for %q", title)
		return unavailable, nil
	}

	return models.Trailer{
		URL:       fmt.Sprintf("https://www.youtube.com/watch?v=%s", res.Items[0].ID.VideoID),
		Title:     title,
		Available: true,
	}, nil
}
