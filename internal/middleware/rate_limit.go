package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// evictAfter is how long an IP can stay idle before its limiter is dropped.
// Keeps the map from growing without bound on public endpoints.
const evictAfter = 30 * time.Minute

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips map[string]*ipEntry
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipEntry),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := time.Now()

	entry, exists := i.ips[key]
	if !exists {
		i.evictStaleLocked(now)
		entry = &ipEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

func (i *IPRateLimiter) evictStaleLocked(now time.Time) {
	for key, entry := range i.ips {
		if now.Sub(entry.lastSeen) > evictAfter {
			delete(i.ips, key)
		}
	}
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this IP", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
