// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for responses,
// likes, and comments.
//
// Error semantics:
//   - Missing records surface as gorm.ErrRecordNotFound / ErrNotFound.
//   - Duplicate responses and likes rely on the schema's unique indexes; the
//     raw driver error is propagated for the service layer to translate into
//     its conflict sentinels.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
)

// CreateResponse inserts a response row. IsVisible defaults to true for new
// responses; the hidden transition is schema-only.
func CreateResponse(ctx context.Context, db *gorm.DB, r *domain.Response) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.IsVisible = true
	return db.WithContext(ctx).Create(r).Error
}

// GetResponse fetches a response by id, or ErrNotFound.
func GetResponse(ctx context.Context, db *gorm.DB, id int) (*domain.Response, error) {
	var r domain.Response
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// GetUserResponseForPrompt fetches the caller's existing response for the
// (userID, promptID, podID) triple. Returns (nil, nil) when none exists.
func GetUserResponseForPrompt(ctx context.Context, db *gorm.DB, userID, promptID, podID int) (*domain.Response, error) {
	var r domain.Response
	err := db.WithContext(ctx).
		Where("user_id = ? AND prompt_id = ? AND pod_id = ?", userID, promptID, podID).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// ListPodResponses returns the visible responses for a pod, optionally
// filtered to one prompt, newest first by creation time.
func ListPodResponses(ctx context.Context, db *gorm.DB, podID int, promptID *int) ([]domain.Response, error) {
	q := db.WithContext(ctx).
		Where("pod_id = ? AND is_visible = ?", podID, true)
	if promptID != nil {
		q = q.Where("prompt_id = ?", *promptID)
	}
	var out []domain.Response
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

// LikeResponse inserts a like row for (responseID, userID). The unique
// (response_id, user_id) index rejects a second like from the same user; the
// constraint violation is propagated raw.
func LikeResponse(ctx context.Context, db *gorm.DB, responseID, userID int) (*domain.ResponseLike, error) {
	like := &domain.ResponseLike{
		ResponseID: responseID,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikeResponse deletes the like row for (responseID, userID) and reports
// whether a row was removed. Unliking when no like exists is not an error.
func UnlikeResponse(ctx context.Context, db *gorm.DB, responseID, userID int) (bool, error) {
	res := db.WithContext(ctx).
		Where("response_id = ? AND user_id = ?", responseID, userID).
		Delete(&domain.ResponseLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountResponseLikes returns the live like count for a response.
func CountResponseLikes(ctx context.Context, db *gorm.DB, responseID int) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.ResponseLike{}).
		Where("response_id = ?", responseID).
		Count(&n).Error
	return n, err
}

// HasLiked reports whether userID has liked responseID.
func HasLiked(ctx context.Context, db *gorm.DB, responseID, userID int) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.ResponseLike{}).
		Where("response_id = ? AND user_id = ?", responseID, userID).
		Count(&n).Error
	return n > 0, err
}

// AddComment appends a comment to a response. Storage-layer support only;
// no HTTP route creates comments at present.
func AddComment(ctx context.Context, db *gorm.DB, responseID, userID int, content string) (*domain.ResponseComment, error) {
	c := &domain.ResponseComment{
		ResponseID: responseID,
		UserID:     userID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetResponseComments returns the comments on a response joined with their
// authors, oldest first.
func GetResponseComments(ctx context.Context, db *gorm.DB, responseID int) ([]domain.CommentWithUser, error) {
	var comments []domain.ResponseComment
	err := db.WithContext(ctx).
		Where("response_id = ?", responseID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []domain.CommentWithUser{}, nil
	}

	ids := make([]int, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	var users []domain.User
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]domain.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		out = append(out, domain.CommentWithUser{ResponseComment: c, User: byID[c.UserID]})
	}
	return out, nil
}
