package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultHSTSMaxAge = 180 * 24 * time.Hour

// SecurityOptions controls which hardening headers SecurityHeaders emits.
//
// EnableHSTS should only be set when traffic is HTTPS end-to-end, including
// the hop between the reverse proxy and this process. HSTSMaxAge falls back
// to 180 days when zero or negative.
//
// NoStore adds Cache-Control: no-store so session-scoped API responses are
// never cached. EnablePolicy emits the browser feature policies; they are
// ignored by non-browser clients.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders returns middleware that stamps each response with a
// conservative header set for a JSON API: nosniff, frame denial, and a
// no-referrer policy always; feature policies, cache suppression, and HSTS
// per SecurityOptions. HSTS is only written on requests that actually
// arrived over HTTPS, so a misconfigured flag cannot pin plain-HTTP
// deployments. There is no Content-Security-Policy here since the API never
// serves HTML.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	hstsSeconds := int(opt.HSTSMaxAge.Seconds())
	if hstsSeconds <= 0 {
		hstsSeconds = int(defaultHSTSMaxAge.Seconds())
	}
	hstsValue := "max-age=" + strconv.Itoa(hstsSeconds) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		if opt.NoStore {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}

		if opt.EnableHSTS && requestIsHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		// Let browser clients read the request id for support tickets.
		if rid := h.Get("X-Request-ID"); rid != "" {
			exposeHeader(h, "X-Request-ID")
		}

		c.Next()
	}
}

// exposeHeader appends name to Access-Control-Expose-Headers without
// clobbering values set by the CORS layer.
func exposeHeader(h http.Header, name string) {
	const key = "Access-Control-Expose-Headers"
	cur := h.Get(key)
	switch {
	case cur == "":
		h.Set(key, name)
	case !strings.Contains(cur, name):
		h.Set(key, cur+", "+name)
	}
}

// requestIsHTTPS checks both direct TLS and the X-Forwarded-Proto header a
// terminating proxy sets.
func requestIsHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
