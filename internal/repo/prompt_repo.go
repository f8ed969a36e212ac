// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for prompts and
// their pod-scoped aggregates.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
)

// CreatePrompt inserts a prompt row. Prompts are written only by the seed
// path; there is no mutation surface.
func CreatePrompt(ctx context.Context, db *gorm.DB, p *domain.Prompt) error {
	return db.WithContext(ctx).Create(p).Error
}

// GetPrompt fetches a prompt by id, or ErrNotFound.
func GetPrompt(ctx context.Context, db *gorm.DB, id int) (*domain.Prompt, error) {
	var p domain.Prompt
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCurrentPrompt selects the most recently started prompt among those
// flagged active. It returns (nil, nil) when no active prompt exists, which
// is a valid, expected state rather than an error.
func GetCurrentPrompt(ctx context.Context, db *gorm.DB) (*domain.Prompt, error) {
	var p domain.Prompt
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("week_start DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// CountResponsesForPrompt counts the responses for (promptID, podID).
// Deliberately not filtered by visibility: the stats figure counts every
// submission, hidden or not.
func CountResponsesForPrompt(ctx context.Context, db *gorm.DB, promptID, podID int) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Response{}).
		Where("prompt_id = ? AND pod_id = ?", promptID, podID).
		Count(&n).Error
	return n, err
}
