package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"cinequiz/internal/catalog"
	"cinequiz/internal/enrich"
	"cinequiz/internal/ratelimit"
	"cinequiz/internal/recommend"
	"cinequiz/internal/session"
	"cinequiz/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := utils.LoadConfig()

	if cfg.TraktClientID == "" {
		log.Println("no Trakt credential configured, catalog runs in degraded mode")
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	limiter := ratelimit.NewLimiter(cfg.RateLimitWindow, cfg.RateLimitMax, cfg.RateLimitBlock)
	defer limiter.Stop()

	router.Use(requestID())
	router.Use(ratelimit.Middleware(limiter))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"trakt":           cfg.TraktClientID != "",
			"watchmode":       cfg.WatchmodeAPIKey != "",
			"news":            cfg.NewsAPIKey != "",
			"youtube":         cfg.YouTubeAPIKey != "",
			"request_timeout": cfg.RequestTimeout.String(),
		})
	})

	// Provider clients: an empty key leaves the client in degraded mode,
	// it never blocks startup.
	trakt := catalog.NewTraktClient(cfg.TraktClientID, cfg.RequestTimeout)
	cascade := catalog.NewCascade(trakt)
	streaming := enrich.NewWatchmodeClient(cfg.WatchmodeAPIKey, cfg.RequestTimeout)
	news := enrich.NewNewsClient(cfg.NewsAPIKey, cfg.RequestTimeout)
	trailers := enrich.NewYouTubeClient(cfg.YouTubeAPIKey, cfg.RequestTimeout)
	pipeline := enrich.NewPipeline(streaming, news)

	tokens := session.TokenService{
		Secret:   []byte(cfg.SecretKey),
		Issuer:   "cinequiz",
		Duration: 24 * time.Hour,
	}

	svc := recommend.NewService(cascade, pipeline, streaming, trailers)
	handler := recommend.NewHandler(svc, tokens)
	handler.RegisterRoutes(&router.RouterGroup)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// requestID tags every request so degraded-provider warnings can be tied
// back to the request that hit them.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
