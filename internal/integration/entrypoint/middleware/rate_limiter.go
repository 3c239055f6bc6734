// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/dto"
)

// Login attempts are capped per client IP over a fixed window. Counters
// live in process memory, which is enough for a single API instance.
const (
	loginAttemptLimit = 5
	loginWindow       = time.Minute
)

// bucket counts attempts from one client within the current window.
type bucket struct {
	count     int
	windowEnd time.Time
}

// RateLimiter caps how often a client may hit an endpoint within a fixed
// time window.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with the login defaults.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   loginAttemptLimit,
		window:  loginWindow,
	}
}

// Middleware rejects requests over the limit with 429. The test
// environment bypasses it so scenarios can log in repeatedly.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.take(key) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// take counts one attempt for key and reports whether it fit in the
// current window. Expired buckets for other clients are pruned on the
// way, so the map does not grow unbounded.
func (rl *RateLimiter) take(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for k, b := range rl.buckets {
		if k != key && now.After(b.windowEnd) {
			delete(rl.buckets, k)
		}
	}

	b, ok := rl.buckets[key]
	if !ok || now.After(b.windowEnd) {
		rl.buckets[key] = &bucket{count: 1, windowEnd: now.Add(rl.window)}
		return true
	}
	if b.count >= rl.limit {
		return false
	}
	b.count++
	return true
}
