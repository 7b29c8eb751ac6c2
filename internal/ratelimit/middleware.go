package ratelimit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Middleware gates every request through the limiter, keyed by client IP.
// Blocked requests get 429 with a Retry-After hint and never reach the
// handler.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := l.Admit(c.ClientIP())
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
