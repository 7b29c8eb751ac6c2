package utils

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the server reads from the environment.
// Provider keys are optional: an empty key degrades that provider to its
// static fallback, it never aborts startup or a request.
type Config struct {
	Addr string

	SecretKey         string
	TraktClientID     string
	TraktClientSecret string
	NewsAPIKey        string
	WatchmodeAPIKey   string
	YouTubeAPIKey     string

	RateLimitWindow time.Duration
	RateLimitMax    int
	RateLimitBlock  time.Duration

	RequestTimeout time.Duration
}

func LoadConfig() Config {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	return Config{
		Addr:              envString("ADDR", ":8080"),
		SecretKey:         secret,
		TraktClientID:     os.Getenv("TRAKT_CLIENT_ID"),
		TraktClientSecret: os.Getenv("TRAKT_CLIENT_SECRET"),
		NewsAPIKey:        os.Getenv("NEWS_API_KEY"),
		WatchmodeAPIKey:   os.Getenv("WATCHMODE_API_KEY"),
		YouTubeAPIKey:     os.Getenv("YOUTUBE_API_KEY"),
		RateLimitWindow:   envSeconds("RATE_LIMIT_WINDOW", 60*time.Second),
		RateLimitMax:      envInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitBlock:    envSeconds("RATE_LIMIT_BLOCK", 60*time.Second),
		RequestTimeout:    envSeconds("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// envSeconds reads an integer number of seconds, matching how the original
// deployment configured its windows and timeouts.
func envSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
