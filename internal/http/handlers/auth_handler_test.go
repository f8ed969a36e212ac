package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/http/middleware"
	"github.com/intouchhq/go-intouch-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------- stub services (function fields; nil means "not expected") ----------

type stubAuthSvc struct {
	register       func(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	login          func(ctx context.Context, username, password string) (*domain.User, error)
	issueSession   func(ctx context.Context, userID int) (*domain.Session, error)
	destroySession func(ctx context.Context, sid string) error
	currentUser    func(ctx context.Context, userID int) (*domain.User, []domain.PodWithStats, error)
}

func (s *stubAuthSvc) Register(ctx context.Context, in services.RegisterInput) (*domain.User, error) {
	return s.register(ctx, in)
}
func (s *stubAuthSvc) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.login(ctx, username, password)
}
func (s *stubAuthSvc) IssueSession(ctx context.Context, userID int) (*domain.Session, error) {
	return s.issueSession(ctx, userID)
}
func (s *stubAuthSvc) DestroySession(ctx context.Context, sid string) error {
	return s.destroySession(ctx, sid)
}
func (s *stubAuthSvc) CurrentUser(ctx context.Context, userID int) (*domain.User, []domain.PodWithStats, error) {
	return s.currentUser(ctx, userID)
}

type stubPodSvc struct {
	create       func(ctx context.Context, userID int, name string, description *string) (*domain.Pod, error)
	listForUser  func(ctx context.Context, userID int) ([]domain.PodWithStats, error)
	members      func(ctx context.Context, callerID, podID int) ([]domain.PodMemberWithUser, error)
	addMember    func(ctx context.Context, callerID, podID, userID int) (*domain.PodMember, error)
	removeMember func(ctx context.Context, callerID, podID, userID int) error
}

func (s *stubPodSvc) Create(ctx context.Context, userID int, name string, description *string) (*domain.Pod, error) {
	return s.create(ctx, userID, name, description)
}
func (s *stubPodSvc) ListForUser(ctx context.Context, userID int) ([]domain.PodWithStats, error) {
	return s.listForUser(ctx, userID)
}
func (s *stubPodSvc) Members(ctx context.Context, callerID, podID int) ([]domain.PodMemberWithUser, error) {
	return s.members(ctx, callerID, podID)
}
func (s *stubPodSvc) AddMember(ctx context.Context, callerID, podID, userID int) (*domain.PodMember, error) {
	return s.addMember(ctx, callerID, podID, userID)
}
func (s *stubPodSvc) RemoveMember(ctx context.Context, callerID, podID, userID int) error {
	return s.removeMember(ctx, callerID, podID, userID)
}

type stubPromptSvc struct {
	current     func(ctx context.Context) (*domain.Prompt, error)
	statsForPod func(ctx context.Context, callerID, promptID, podID int) (*domain.PromptWithStats, error)
}

func (s *stubPromptSvc) Current(ctx context.Context) (*domain.Prompt, error) {
	return s.current(ctx)
}
func (s *stubPromptSvc) StatsForPod(ctx context.Context, callerID, promptID, podID int) (*domain.PromptWithStats, error) {
	return s.statsForPod(ctx, callerID, promptID, podID)
}

type stubRespSvc struct {
	create  func(ctx context.Context, userID, promptID, podID int, content domain.ResponseContent, imageURL *string) (*domain.Response, error)
	podFeed func(ctx context.Context, callerID, podID int, promptID *int) ([]domain.ResponseWithDetails, error)
	like    func(ctx context.Context, userID, responseID int) (*domain.ResponseLike, error)
	unlike  func(ctx context.Context, userID, responseID int) (bool, error)
}

func (s *stubRespSvc) Create(ctx context.Context, userID, promptID, podID int, content domain.ResponseContent, imageURL *string) (*domain.Response, error) {
	return s.create(ctx, userID, promptID, podID, content, imageURL)
}
func (s *stubRespSvc) PodFeed(ctx context.Context, callerID, podID int, promptID *int) ([]domain.ResponseWithDetails, error) {
	return s.podFeed(ctx, callerID, podID, promptID)
}
func (s *stubRespSvc) Like(ctx context.Context, userID, responseID int) (*domain.ResponseLike, error) {
	return s.like(ctx, userID, responseID)
}
func (s *stubRespSvc) Unlike(ctx context.Context, userID, responseID int) (bool, error) {
	return s.unlike(ctx, userID, responseID)
}

// ---------- harness ----------

const testCookieName = "intouch_session"

// newTestRouter mounts the full route table in front of h, with a shim
// middleware standing in for session auth: every request runs as uid with
// the given sid.
func newTestRouter(h *Handlers, uid int, sid string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if uid > 0 {
			c.Set("userID", uid)
		}
		if sid != "" {
			c.Set("sessionSID", sid)
		}
		c.Next()
	})

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)
	r.POST("/pods", h.CreatePod)
	r.GET("/pods", h.ListPods)
	r.GET("/pods/:podId/members", h.ListPodMembers)
	r.POST("/pods/:podId/members", h.AddPodMember)
	r.DELETE("/pods/:podId/members/:userId", h.RemovePodMember)
	r.GET("/prompts/current", h.CurrentPrompt)
	r.GET("/prompts/:promptId/stats/:podId", h.PromptStats)
	r.POST("/responses", h.CreateResponse)
	r.GET("/pods/:podId/responses", h.ListPodResponses)
	r.POST("/responses/:responseId/like", h.LikeResponse)
	r.DELETE("/responses/:responseId/like", h.UnlikeResponse)
	return r
}

func testCookie() middleware.SessionCookie {
	return middleware.SessionCookie{Name: testCookieName, MaxAge: 3600}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error envelope: %v (body %q)", err, w.Body.String())
	}
	return e
}

// sessionCookieValue extracts the session cookie value from the response,
// or "" when none was set.
func sessionCookieValue(w *httptest.ResponseRecorder) (value string, found bool) {
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			return c.Value, true
		}
	}
	return "", false
}

// ---------- auth endpoints ----------

func TestRegister_Success_SetsCookie(t *testing.T) {
	auth := &stubAuthSvc{
		register: func(_ context.Context, in services.RegisterInput) (*domain.User, error) {
			if in.Username != "sarah_chen" || in.Email != "sarah@example.com" {
				t.Fatalf("input not forwarded: %+v", in)
			}
			return &domain.User{ID: 1, Username: in.Username, Email: in.Email, DisplayName: in.DisplayName}, nil
		},
		issueSession: func(_ context.Context, userID int) (*domain.Session, error) {
			return &domain.Session{SID: "sid-1", UserID: userID}, nil
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 0, "")

	w := doJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{
		Username: "sarah_chen", Email: "sarah@example.com",
		Password: "password123", DisplayName: "Sarah Chen",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Username != "sarah_chen" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("response leaked a password field: %s", w.Body.String())
	}

	sid, found := sessionCookieValue(w)
	if !found || sid != "sid-1" {
		t.Fatalf("session cookie not set: %q found=%v", sid, found)
	}
}

func TestRegister_InvalidPayload(t *testing.T) {
	h := New(&stubAuthSvc{}, nil, nil, nil, testCookie())
	r := newTestRouter(h, 0, "")

	cases := []struct {
		name string
		body any
	}{
		{"empty body", map[string]string{}},
		{"short username", RegisterRequest{Username: "ab", Email: "a@b.co", Password: "password123", DisplayName: "A"}},
		{"bad email", RegisterRequest{Username: "abcdef", Email: "not-an-email", Password: "password123", DisplayName: "A"}},
		{"short password", RegisterRequest{Username: "abcdef", Email: "a@b.co", Password: "short", DisplayName: "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/register", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if decodeErr(t, w).Code != ErrCodeBadRequest {
				t.Fatalf("unexpected error body: %s", w.Body.String())
			}
		})
	}
}

func TestRegister_Conflicts(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"username taken", services.ErrUsernameTaken, "username already exists"},
		{"email taken", services.ErrEmailTaken, "email already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuthSvc{
				register: func(context.Context, services.RegisterInput) (*domain.User, error) {
					return nil, tc.err
				},
			}
			h := New(auth, nil, nil, nil, testCookie())
			r := newTestRouter(h, 0, "")

			w := doJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{
				Username: "sarah_chen", Email: "sarah@example.com",
				Password: "password123", DisplayName: "Sarah Chen",
			})
			if w.Code != http.StatusConflict {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			e := decodeErr(t, w)
			if e.Code != ErrCodeConflict || e.Message != tc.message {
				t.Fatalf("unexpected error body: %+v", e)
			}
			if _, found := sessionCookieValue(w); found {
				t.Fatalf("conflict response must not set a session cookie")
			}
		})
	}
}

func TestLogin_Success_SetsCookie(t *testing.T) {
	auth := &stubAuthSvc{
		login: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "demo" || password != "demo123" {
				t.Fatalf("credentials not forwarded: %q %q", username, password)
			}
			return &domain.User{ID: 7, Username: "demo", DisplayName: "Demo User"}, nil
		},
		issueSession: func(_ context.Context, userID int) (*domain.Session, error) {
			return &domain.Session{SID: "sid-7", UserID: userID}, nil
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 0, "")

	w := doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{Username: "demo", Password: "demo123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if sid, found := sessionCookieValue(w); !found || sid != "sid-7" {
		t.Fatalf("session cookie not set: %q found=%v", sid, found)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &stubAuthSvc{
		login: func(context.Context, string, string) (*domain.User, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 0, "")

	w := doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{Username: "demo", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeErr(t, w).Code != ErrCodeUnauthorized {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestLogout_DestroysSessionAndClearsCookie(t *testing.T) {
	destroyed := ""
	auth := &stubAuthSvc{
		destroySession: func(_ context.Context, sid string) error {
			destroyed = sid
			return nil
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 7, "sid-7")

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if destroyed != "sid-7" {
		t.Fatalf("destroyed sid = %q, want sid-7", destroyed)
	}

	// The cookie is cleared with an expired Set-Cookie.
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not cleared: %v", w.Header().Values("Set-Cookie"))
	}
}

func TestMe_Success(t *testing.T) {
	auth := &stubAuthSvc{
		currentUser: func(_ context.Context, userID int) (*domain.User, []domain.PodWithStats, error) {
			if userID != 7 {
				t.Fatalf("userID = %d, want 7", userID)
			}
			return &domain.User{ID: 7, Username: "demo"},
				[]domain.PodWithStats{{Pod: domain.Pod{ID: 1, Name: "College Friends"}, MemberCount: 4, IsAdmin: true}},
				nil
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 7, "sid-7")

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp MeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID != 7 || len(resp.Pods) != 1 || resp.Pods[0].MemberCount != 4 {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestMe_StaleSessionClearsCookie(t *testing.T) {
	auth := &stubAuthSvc{
		currentUser: func(context.Context, int) (*domain.User, []domain.PodWithStats, error) {
			return nil, nil, services.ErrUserNotFound
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 7, "sid-7")

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("stale session cookie not cleared")
	}
}

func TestMe_InternalError(t *testing.T) {
	auth := &stubAuthSvc{
		currentUser: func(context.Context, int) (*domain.User, []domain.PodWithStats, error) {
			return nil, nil, errors.New("db down")
		},
	}
	h := New(auth, nil, nil, nil, testCookie())
	r := newTestRouter(h, 7, "sid-7")

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if decodeErr(t, w).Code != ErrCodeInternal {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}
