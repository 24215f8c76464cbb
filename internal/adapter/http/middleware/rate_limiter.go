package middleware

import (
	"net/http"
	"sync"
	"time"

	"storefront_checkout/pkg"
	"storefront_checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key. Entries idle for longer
// than ttl are dropped on the next lookup.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rate    rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func NewRateLimiter(r rate.Limit, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		rate:    r,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for k, e := range rl.entries {
		if rl.ttl > 0 && now.Sub(e.lastSeen) > rl.ttl {
			delete(rl.entries, k)
		}
	}
	if e, ok := rl.entries[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	e := &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst), lastSeen: now}
	rl.entries[key] = e
	return e.limiter
}

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many payment requests, try again shortly", http.StatusTooManyRequests)

// SubmitRateLimit throttles payment submissions per client and session.
func SubmitRateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + "|" + c.Param("id")
		if !rl.limiter(key).AllowN(rl.now(), 1) {
			logger.Warn(c.Request.Context(), "[checkout][http] submit rate limited", zap.String("key", key))
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
