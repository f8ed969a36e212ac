// Auth HTTP handlers.
//
// This file exposes REST endpoints for accounts and sessions:
//   - POST /auth/register  (create account + session)
//   - POST /auth/login     (verify credentials + session)
//   - POST /auth/logout    (destroy session)
//   - GET  /auth/me        (current user + pods)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The session id travels in an
// HttpOnly cookie; handlers never echo it in response bodies.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/http/middleware"
	"github.com/intouchhq/go-intouch-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// AuthService defines account and session operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AuthService interface {
	// Register creates a new account.
	Register(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns the user.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// IssueSession creates a server-side session for userID.
	IssueSession(ctx context.Context, userID int) (*domain.Session, error)
	// DestroySession removes the session identified by sid.
	DestroySession(ctx context.Context, sid string) error
	// CurrentUser returns the user together with their pods.
	CurrentUser(ctx context.Context, userID int) (*domain.User, []domain.PodWithStats, error)
}

// PodService defines pod and membership operations consumed by HTTP handlers.
type PodService interface {
	// Create inserts a pod owned by userID with the creator as admin member.
	Create(ctx context.Context, userID int, name string, description *string) (*domain.Pod, error)
	// ListForUser returns every pod the caller belongs to.
	ListForUser(ctx context.Context, userID int) ([]domain.PodWithStats, error)
	// Members lists a pod's members with user details.
	Members(ctx context.Context, callerID, podID int) ([]domain.PodMemberWithUser, error)
	// AddMember adds userID to the pod (admin only).
	AddMember(ctx context.Context, callerID, podID, userID int) (*domain.PodMember, error)
	// RemoveMember removes userID from the pod (admin, or self-leave).
	RemoveMember(ctx context.Context, callerID, podID, userID int) error
}

// PromptService defines weekly prompt reads consumed by HTTP handlers.
type PromptService interface {
	// Current returns the active prompt, or nil when none is active.
	Current(ctx context.Context) (*domain.Prompt, error)
	// StatsForPod returns the prompt with pod-scoped aggregates.
	StatsForPod(ctx context.Context, callerID, promptID, podID int) (*domain.PromptWithStats, error)
}

// ResponseService defines response, feed, and like operations consumed by
// HTTP handlers.
type ResponseService interface {
	// Create submits the caller's response to a prompt within a pod.
	Create(ctx context.Context, userID, promptID, podID int, content domain.ResponseContent, imageURL *string) (*domain.Response, error)
	// PodFeed returns the visible responses of a pod, newest first.
	PodFeed(ctx context.Context, callerID, podID int, promptID *int) ([]domain.ResponseWithDetails, error)
	// Like records the caller's like on a response.
	Like(ctx context.Context, userID, responseID int) (*domain.ResponseLike, error)
	// Unlike removes the caller's like, reporting whether one existed.
	Unlike(ctx context.Context, userID, responseID int) (bool, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for auth, pods, prompts, and responses.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	authSvc   AuthService
	podSvc    PodService
	promptSvc PromptService
	respSvc   ResponseService
	cookie    middleware.SessionCookie
}

// New constructs and returns a Handlers instance bound to the given services
// and session cookie settings.
func New(authSvc AuthService, podSvc PodService, promptSvc PromptService, respSvc ResponseService, cookie middleware.SessionCookie) *Handlers {
	return &Handlers{
		authSvc:   authSvc,
		podSvc:    podSvc,
		promptSvc: promptSvc,
		respSvc:   respSvc,
		cookie:    cookie,
	}
}

// userID extracts the authenticated user id from Gin context (set by the
// session middleware). Routes behind RequireSession always have it; a zero
// return means the middleware was bypassed and the handler must 401.
func userID(c *gin.Context) int {
	uid, _ := middleware.UserIDFrom(c)
	return uid
}

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=64" example:"sarah_chen"`
	Email       string `json:"email" binding:"required,email" example:"sarah@example.com"`
	Password    string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=255" example:"Sarah Chen"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"sarah_chen"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// AuthResponse wraps the authenticated user resource.
type AuthResponse struct {
	User domain.User `json:"user"`
}

// MeResponse wraps the current user and their pod memberships.
type MeResponse struct {
	User domain.User           `json:"user"`
	Pods []domain.PodWithStats `json:"pods"`
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new user, starts a session, and sets the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object} handlers.AuthResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     409  {object} handlers.ErrorResponse "Username or email taken"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, email, password, and display_name are required")
		return
	}

	u, err := h.authSvc.Register(c.Request.Context(), services.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		switch err {
		case services.ErrUsernameTaken:
			fail(c, http.StatusConflict, ErrCodeConflict, "username already exists")
		case services.ErrEmailTaken:
			fail(c, http.StatusConflict, ErrCodeConflict, "email already exists")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	sess, err := h.authSvc.IssueSession(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	h.cookie.Set(c, sess.SID)

	ok(c, http.StatusCreated, AuthResponse{User: *u})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials, starts a session, and sets the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object} handlers.AuthResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "Invalid credentials"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	u, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	sess, err := h.authSvc.IssueSession(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	h.cookie.Set(c, sess.SID)

	ok(c, http.StatusOK, AuthResponse{User: *u})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Destroys the current session and clears the session cookie.
// @Tags        Auth
// @Produce     json
//
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	sid, has := middleware.SessionSIDFrom(c)
	if has {
		if err := h.authSvc.DestroySession(c.Request.Context(), sid); err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
			return
		}
	}
	h.cookie.Clear(c)
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current user
// @Description Returns the authenticated user together with their pods.
// @Tags        Auth
// @Produce     json
//
// @Success     200  {object} handlers.MeResponse
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	uid := userID(c)
	if uid == 0 {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	u, pods, err := h.authSvc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			// Session outlived the account.
			h.cookie.Clear(c)
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, MeResponse{User: *u, Pods: pods})
}
