// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements cookie-based session authentication. The client
// holds an opaque sid in an HttpOnly cookie; the middleware resolves it
// against the sessions table and injects the authenticated user id into the
// Gin context. The session's only payload is the user id; handlers receive
// the caller identity explicitly and never read ambient auth state.
//
// Failure semantics: a missing, unknown, or expired session yields a uniform
// 401 with no detail about why, so session probing cannot distinguish the
// cases. Authorization failures (member checks) are the services' job and
// map to 403 downstream.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/repo"
)

const (
	// userIDKey is the Gin context key under which the authenticated user id
	// is stored (as an int).
	userIDKey = "userID"
	// sessionSIDKey is the Gin context key holding the raw sid, so logout
	// can destroy the right session.
	sessionSIDKey = "sessionSID"
)

// SessionCookie configures the session cookie the middleware reads and the
// auth handlers write.
type SessionCookie struct {
	Name   string // cookie name, e.g. "intouch_session"
	MaxAge int    // seconds; also the session TTL hint for Set-Cookie
	Secure bool   // set true when serving HTTPS end-to-end
	Path   string // defaults to "/"
}

// Set writes the session cookie onto the response.
func (sc SessionCookie) Set(c *gin.Context, sid string) {
	path := sc.Path
	if path == "" {
		path = "/"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, sid, sc.MaxAge, path, "", sc.Secure, true)
}

// Clear expires the session cookie on the client.
func (sc SessionCookie) Clear(c *gin.Context) {
	path := sc.Path
	if path == "" {
		path = "/"
	}
	c.SetCookie(sc.Name, "", -1, path, "", sc.Secure, true)
}

// RequireSession returns a middleware that authenticates the request from
// the session cookie. Unauthenticated requests are rejected with a 401
// error envelope; on success the user id and sid are stored in the context.
func RequireSession(db *gorm.DB, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookie.Name)
		if err != nil || sid == "" {
			unauthorized(c)
			return
		}
		sess, err := repo.GetSession(c.Request.Context(), db, sid)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(userIDKey, sess.UserID)
		c.Set(sessionSIDKey, sid)
		c.Next()
	}
}

// unauthorized aborts with the standard error envelope. Deliberately uniform
// for every authentication failure.
func unauthorized(c *gin.Context) {
	authFailures.Inc()
	rid, _ := c.Get(requestIDKey)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": asString(rid),
		"code":       "unauthorized",
		"message":    "authentication required",
	})
}

// UserIDFrom returns the authenticated user id placed in the context by
// RequireSession, and whether one is present.
func UserIDFrom(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

// SessionSIDFrom returns the raw sid for the current request, if any.
func SessionSIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionSIDKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
