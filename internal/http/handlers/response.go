// Package handlers implements the HTTP endpoints of the public API.
//
// Every endpoint writes through the helpers in this file so success and
// failure bodies have one shape across the whole surface. Errors always carry
// a stable machine-readable code from errors.go plus the request id, so a
// client error report can be matched to server logs:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "pod not found"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope every endpoint returns on failure.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"pod not found"`
}

// fail writes the error envelope and aborts the chain. Server-side failures
// (>= 500) are also logged through the request-scoped logger; client errors
// are the caller's problem and stay out of the error log.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail exposes fail to other packages, the router's NoRoute handler in
// particular.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
