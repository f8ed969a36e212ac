package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Idle buckets are dropped once they have been quiet this long. Eviction is
// opportunistic: it runs inside getVisitor once every cleanupEvery lookups,
// which keeps the map bounded without a background goroutine. The limiter is
// process-local; a multi-instance deployment needs a shared store to enforce
// a global limit.
const (
	visitorTTL   = 10 * time.Minute
	cleanupEvery = 5000
)

// keyFunc maps a request to the identity whose bucket should absorb it.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys buckets by the authenticated user when the session
// middleware ran, otherwise by client IP. The prefixes keep the two
// namespaces from colliding.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if uid, ok := UserIDFrom(c); ok {
			return "user:" + strconv.Itoa(uid)
		}
		return "ip:" + c.ClientIP()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands each identity its own token bucket, created lazily on
// first sight. Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	lookups  uint64
}

// NewRateLimiter builds a limiter replenishing rps tokens per second with
// the given burst capacity. A burst below 1 is coerced to 1 so a positive
// rps can never be configured into a limiter that admits nothing.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
		ttl:      visitorTTL,
	}
}

func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Sweep before reading the requested key, so a stale bucket gets evicted
	// rather than refreshed when it happens to be the one asked for.
	rl.lookups++
	if rl.lookups >= cleanupEvery {
		rl.lookups = 0
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Handler returns middleware that admits or rejects each request against its
// key's bucket. Rejections get a 429 with the usual error envelope and a
// Retry-After hint of one second.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.getVisitor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
