// Package services – AuthService
//
// This file implements AuthService, which owns account registration, login,
// and session issue/teardown. Passwords are hashed with bcrypt before they
// reach the repo layer; username/email uniqueness is pre-checked and also
// backed by unique indexes, with driver duplicate errors translated to the
// same sentinels so concurrent registrations cannot slip through.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"
)

// AuthService implements the use-cases around accounts and sessions.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// BcryptCost is the work factor for password hashing. Zero means
	// bcrypt.DefaultCost.
	BcryptCost int

	// SessionTTL is the lifetime of issued sessions.
	SessionTTL time.Duration
}

// NewAuthService constructs an AuthService with sane defaults.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:         db,
		BcryptCost: bcrypt.DefaultCost,
		SessionTTL: 24 * time.Hour,
	}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// Register creates a new account and returns the persisted user.
//
// Semantics:
//   - Username and email are trimmed; email is lowercased.
//   - A taken username yields ErrUsernameTaken, a taken email ErrEmailTaken;
//     the conflicting field is identified, matching the API contract.
//   - The password is bcrypt-hashed; plaintext never reaches the store.
//
// The existence checks and insert run inside a transaction, and a driver
// unique violation on the insert is translated to the matching sentinel, so
// two concurrent registrations for the same name cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:    username,
		Email:       email,
		Password:    string(hash),
		DisplayName: strings.TrimSpace(in.DisplayName),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetUserByUsername(ctx, tx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := repo.GetUserByEmail(ctx, tx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.CreateUser(ctx, tx, u); err != nil {
			if isDuplicate(err) {
				// Raced past the pre-check; attribute to the username since
				// it is the primary identity column.
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns the user. Unknown usernames and
// wrong passwords are indistinguishable to the caller: both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueSession creates a server-side session for userID and returns it.
// Expired sessions are swept opportunistically on each issue.
func (s *AuthService) IssueSession(ctx context.Context, userID int) (*domain.Session, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	_, _ = repo.DeleteExpiredSessions(ctx, s.DB)
	return repo.CreateSession(ctx, s.DB, userID, ttl)
}

// DestroySession removes the session identified by sid.
func (s *AuthService) DestroySession(ctx context.Context, sid string) error {
	return repo.DeleteSession(ctx, s.DB, sid)
}

// CurrentUser returns the user together with their pods (member counts and
// the caller's admin flag per pod).
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*domain.User, []domain.PodWithStats, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	pods, err := repo.ListUserPods(ctx, s.DB, userID)
	if err != nil {
		return nil, nil, err
	}
	return u, pods, nil
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
