package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = net.JoinHostPort("203.0.113.9", "40000")

	keyFn := KeyByUserOrIP()

	if key := keyFn(c); !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("anonymous request key = %q, want ip-based", key)
	}

	c.Set(userIDKey, 42)
	if key := keyFn(c); key != "user:42" {
		t.Fatalf("authenticated request key = %q, want user:42", key)
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}

func TestRateLimiter_ReusesBucketPerKey(t *testing.T) {
	rl := NewRateLimiter(2.0, 1, KeyByUserOrIP())
	first := rl.getVisitor("k1")
	if first == nil {
		t.Fatal("nil limiter")
	}
	if rl.getVisitor("k1") != first {
		t.Fatal("second lookup created a fresh bucket")
	}
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())
	rl.ttl = time.Nanosecond

	rl.mu.Lock()
	rl.visitors["stale"] = &visitor{
		limiter:  rate.NewLimiter(1, 1),
		lastSeen: time.Now().Add(-time.Hour),
	}
	rl.lookups = cleanupEvery - 1
	rl.mu.Unlock()

	// Looking up an unrelated key crosses the sweep threshold.
	_ = rl.getVisitor("fresh")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["stale"]; ok {
		t.Fatal("stale bucket survived the sweep")
	}
	if _, ok := rl.visitors["fresh"]; !ok {
		t.Fatal("fresh bucket was not created")
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Header("X-Request-ID", "rid-1"); c.Next() })
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w1.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w1.Code)
	}

	// burst 1 is spent, so the immediate retry gets throttled.
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w2.Code)
	}
	if got := w2.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After = %q, want 1", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w2.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal 429 body: %v", err)
	}
	if body["code"] != "rate_limited" || body["request_id"] != "rid-1" {
		t.Fatalf("unexpected 429 body: %v", body)
	}
}

func TestRateLimiter_Handler_BucketsAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if raw := c.GetHeader("X-Test-User"); raw != "" {
			uid, err := strconv.Atoi(raw)
			if err != nil {
				t.Fatalf("bad test user header %q: %v", raw, err)
			}
			c.Set(userIDKey, uid)
		}
		c.Next()
	})
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	get := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Test-User", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := get("7"); code != http.StatusOK {
		t.Fatalf("user 7 first request status = %d", code)
	}
	if code := get("7"); code != http.StatusTooManyRequests {
		t.Fatalf("user 7 second request status = %d, want 429", code)
	}
	if code := get("8"); code != http.StatusOK {
		t.Fatalf("user 8 should have an untouched bucket, status = %d", code)
	}
}
