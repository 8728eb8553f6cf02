// Package middleware provides HTTP middleware for the phylo server.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/phylo-app/phylo/internal/httputil"
)

// maxBuckets is the maximum number of tracked IPs to prevent memory exhaustion.
const maxBuckets = 100_000

// bucketMaxAge is how long an idle client keeps its limiter.
const bucketMaxAge = 10 * time.Minute

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter with the given requests per second and burst size.
// It starts a background goroutine to evict stale buckets, which stops when ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(ratePerSec),
		burst:   burst,
	}
	go rl.startCleanup(ctx)

	return rl
}

// startCleanup periodically evicts stale rate-limit buckets.
func (rl *RateLimiter) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evict(now)
		}
	}
}

func (rl *RateLimiter) evict(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.lastSeen) > bucketMaxAge {
			delete(rl.buckets, ip)
		}
	}
}

// allow reports whether ip may make a request now. The second result is
// false when the bucket table is full and ip is new.
func (rl *RateLimiter) allow(ip string) (allowed, tracked bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		if len(rl.buckets) >= maxBuckets {
			return false, false
		}

		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[ip] = b
	}

	b.lastSeen = time.Now()

	return b.limiter.Allow(), true
}

// Handler returns Gin middleware that applies rate limiting per client IP.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// c.ClientIP() ignores X-Forwarded-For because the router trusts no proxies.
		allowed, tracked := rl.allow(c.ClientIP())

		switch {
		case !tracked:
			httputil.RespondError(c, http.StatusTooManyRequests, "rate_limited", "too many clients")
		case !allowed:
			httputil.RespondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
		default:
			c.Next()
		}
	}
}
