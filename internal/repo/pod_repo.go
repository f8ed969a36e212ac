// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for pods and
// pod memberships, including the aggregate counts the API displays.
//
// Error semantics follow the package convention: missing records surface as
// gorm.ErrRecordNotFound / ErrNotFound, everything else is the raw DB error.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
)

// CreatePod inserts a new pod row.
func CreatePod(ctx context.Context, db *gorm.DB, p *domain.Pod) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.IsActive = true
	return db.WithContext(ctx).Create(p).Error
}

// GetPod fetches a pod by id, or ErrNotFound.
func GetPod(ctx context.Context, db *gorm.DB, id int) (*domain.Pod, error) {
	var p domain.Pod
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AddPodMember inserts a membership row for (podID, userID). The unique
// (pod_id, user_id) index rejects duplicate memberships; the constraint
// violation is propagated raw for the service layer to translate.
func AddPodMember(ctx context.Context, db *gorm.DB, podID, userID int, isAdmin bool) (*domain.PodMember, error) {
	m := &domain.PodMember{
		PodID:    podID,
		UserID:   userID,
		IsAdmin:  isAdmin,
		JoinedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// RemovePodMember deletes the membership row for (podID, userID). It reports
// whether a row was actually removed.
func RemovePodMember(ctx context.Context, db *gorm.DB, podID, userID int) (bool, error) {
	res := db.WithContext(ctx).
		Where("pod_id = ? AND user_id = ?", podID, userID).
		Delete(&domain.PodMember{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsPodMember reports whether a membership row exists for (podID, userID).
// This is the gate in front of every pod-scoped operation.
func IsPodMember(ctx context.Context, db *gorm.DB, podID, userID int) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.PodMember{}).
		Where("pod_id = ? AND user_id = ?", podID, userID).
		Count(&n).Error
	return n > 0, err
}

// GetPodMembership fetches the caller's own membership row for a pod, or
// ErrNotFound when the caller does not belong to it. Used for admin checks.
func GetPodMembership(ctx context.Context, db *gorm.DB, podID, userID int) (*domain.PodMember, error) {
	var m domain.PodMember
	err := db.WithContext(ctx).
		Where("pod_id = ? AND user_id = ?", podID, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountPodMembers returns the number of membership rows for a pod.
func CountPodMembers(ctx context.Context, db *gorm.DB, podID int) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.PodMember{}).
		Where("pod_id = ?", podID).
		Count(&n).Error
	return n, err
}

// ListPodMembers returns the members of a pod joined with their user
// records, in join insertion order.
func ListPodMembers(ctx context.Context, db *gorm.DB, podID int) ([]domain.PodMemberWithUser, error) {
	var members []domain.PodMember
	err := db.WithContext(ctx).
		Where("pod_id = ?", podID).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []domain.PodMemberWithUser{}, nil
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	var users []domain.User
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]domain.PodMemberWithUser, 0, len(members))
	for _, m := range members {
		out = append(out, domain.PodMemberWithUser{PodMember: m, User: byID[m.UserID]})
	}
	return out, nil
}

// ListUserPods returns every pod the user belongs to, enriched with the live
// member count and the admin flag from the caller's own membership row.
// Ordering is join insertion order (membership id ascending).
func ListUserPods(ctx context.Context, db *gorm.DB, userID int) ([]domain.PodWithStats, error) {
	var memberships []domain.PodMember
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.PodWithStats, 0, len(memberships))
	for _, m := range memberships {
		pod, err := GetPod(ctx, db, m.PodID)
		if err != nil {
			return nil, err
		}
		count, err := CountPodMembers(ctx, db, m.PodID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.PodWithStats{
			Pod:         *pod,
			MemberCount: int(count),
			IsAdmin:     m.IsAdmin,
		})
	}
	return out, nil
}
