// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for server-side
// sessions. Sessions live in the database so a restart does not log every
// user out; expired rows are deleted lazily when they are next touched.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
)

// CreateSession issues a new session for userID with the given lifetime and
// returns the persisted row. The sid is an opaque random identifier; it is
// the only secret the client holds.
func CreateSession(ctx context.Context, db *gorm.DB, userID int, ttl time.Duration) (*domain.Session, error) {
	now := time.Now().UTC()
	s := &domain.Session{
		SID:       uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession fetches a live session by sid. Expired sessions are deleted on
// the spot and reported as ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, sid string) (*domain.Session, error) {
	var s domain.Session
	if err := db.WithContext(ctx).First(&s, "sid = ?", sid).Error; err != nil {
		return nil, err
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		db.WithContext(ctx).Delete(&domain.Session{}, "sid = ?", sid)
		return nil, ErrNotFound
	}
	return &s, nil
}

// DeleteSession removes a session row. Deleting an unknown sid is a no-op.
func DeleteSession(ctx context.Context, db *gorm.DB, sid string) error {
	return db.WithContext(ctx).Delete(&domain.Session{}, "sid = ?", sid).Error
}

// DeleteExpiredSessions removes every session past its expiry. Called
// opportunistically from the auth path; there is no background sweeper.
func DeleteExpiredSessions(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
