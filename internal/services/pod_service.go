// Package services – PodService
//
// This file implements PodService, which manages pods and pod memberships.
// It normalizes and clips pod names, creates the pod and the creator's admin
// membership atomically, and gates member listing and membership mutations
// on the caller's own membership row.
//
// Service-level errors (ErrPodNotFound, ErrNotPodMember, ErrNotPodAdmin,
// ErrAlreadyMember, ErrMemberNotFound) are returned for predictable cases so
// handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PodService provides pod-level operations: creation with automatic admin
// membership, listing the caller's pods with display aggregates, and member
// management.
type PodService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// NameMaxLen caps stored pod names by rune length.
	NameMaxLen int
	// NameLocale selects the casing rules applied to all-lowercase names;
	// English when unset.
	NameLocale language.Tag
}

// NewPodService constructs a PodService with sane defaults for name handling.
func NewPodService(db *gorm.DB) *PodService {
	return &PodService{
		DB:         db,
		NameMaxLen: 100,
		NameLocale: language.Und,
	}
}

// Create inserts a new pod owned by userID and adds the creator as an admin
// member in the same transaction, so a pod can never exist without its admin.
// Names are normalized, trimmed, and clipped; an empty name is invalid.
func (s *PodService) Create(ctx context.Context, userID int, name string, description *string) (*domain.Pod, error) {
	tr := otel.Tracer("services/PodService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.Int("user.id", userID)),
	)
	defer span.End()

	name = s.clip(s.caseName(normalizeName(name)))
	if name == "" {
		return nil, ErrInvalidPodName
	}

	pod := &domain.Pod{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.CreatePod(ctx, tx, pod); err != nil {
			return err
		}
		_, err := repo.AddPodMember(ctx, tx, pod.ID, userID, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pod, nil
}

// ListForUser returns every pod the caller belongs to, with member counts
// and the caller's admin flag.
func (s *PodService) ListForUser(ctx context.Context, userID int) ([]domain.PodWithStats, error) {
	return repo.ListUserPods(ctx, s.DB, userID)
}

// Members lists a pod's members with user details. The caller must be a
// member; a nonexistent pod yields ErrPodNotFound, an existing pod the
// caller does not belong to yields ErrNotPodMember.
func (s *PodService) Members(ctx context.Context, callerID, podID int) ([]domain.PodMemberWithUser, error) {
	if err := s.requireMember(ctx, callerID, podID); err != nil {
		return nil, err
	}
	return repo.ListPodMembers(ctx, s.DB, podID)
}

// AddMember adds userID to the pod. The caller's membership row must carry
// the admin flag. Adding an existing member yields ErrAlreadyMember; adding
// an unknown user yields ErrUserNotFound.
//
// The membership insert runs inside the admin-check transaction and the
// unique (pod_id, user_id) index backs the existence pre-check, so two
// concurrent adds of the same user produce exactly one row.
func (s *PodService) AddMember(ctx context.Context, callerID, podID, userID int) (*domain.PodMember, error) {
	tr := otel.Tracer("services/PodService")
	ctx, span := tr.Start(ctx, "AddMember",
		trace.WithAttributes(
			attribute.Int("pod.id", podID),
			attribute.Int("user.id", userID),
		),
	)
	defer span.End()

	var member *domain.PodMember
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAdmin(ctx, tx, callerID, podID); err != nil {
			return err
		}
		if _, err := repo.GetUser(ctx, tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		m, err := repo.AddPodMember(ctx, tx, podID, userID, false)
		if err != nil {
			if isDuplicate(err) {
				return ErrAlreadyMember
			}
			return err
		}
		member = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember removes userID from the pod. Admins may remove anyone;
// any member may remove themselves (leave). Removing a user with no
// membership row yields ErrMemberNotFound.
func (s *PodService) RemoveMember(ctx context.Context, callerID, podID, userID int) error {
	tr := otel.Tracer("services/PodService")
	ctx, span := tr.Start(ctx, "RemoveMember",
		trace.WithAttributes(
			attribute.Int("pod.id", podID),
			attribute.Int("user.id", userID),
		),
	)
	defer span.End()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if callerID != userID {
			if err := requireAdmin(ctx, tx, callerID, podID); err != nil {
				return err
			}
		} else if err := requireMemberTx(ctx, tx, callerID, podID); err != nil {
			return err
		}
		removed, err := repo.RemovePodMember(ctx, tx, podID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrMemberNotFound
		}
		return nil
	})
}

// IsMember reports whether userID belongs to podID. Exposed for other
// services gating pod-scoped operations.
func (s *PodService) IsMember(ctx context.Context, podID, userID int) (bool, error) {
	return repo.IsPodMember(ctx, s.DB, podID, userID)
}

// requireMember distinguishes "pod missing" from "caller not a member".
func (s *PodService) requireMember(ctx context.Context, callerID, podID int) error {
	return requireMemberTx(ctx, s.DB, callerID, podID)
}

func requireMemberTx(ctx context.Context, db *gorm.DB, callerID, podID int) error {
	if _, err := repo.GetPod(ctx, db, podID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPodNotFound
		}
		return err
	}
	ok, err := repo.IsPodMember(ctx, db, podID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotPodMember
	}
	return nil
}

// requireAdmin checks the caller's own membership row for the admin flag.
func requireAdmin(ctx context.Context, db *gorm.DB, callerID, podID int) error {
	if _, err := repo.GetPod(ctx, db, podID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPodNotFound
		}
		return err
	}
	m, err := repo.GetPodMembership(ctx, db, podID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotPodMember
		}
		return err
	}
	if !m.IsAdmin {
		return ErrNotPodAdmin
	}
	return nil
}

// clip truncates a pod name to the configured maximum rune length.
func (s *PodService) clip(name string) string {
	if s.NameMaxLen > 0 && utf8.RuneCountInString(name) > s.NameMaxLen {
		return string([]rune(name)[:s.NameMaxLen])
	}
	return name
}

// caseName title-cases words the caller typed entirely in lowercase, using
// the configured locale's casing rules. Words carrying any uppercase are
// kept as typed so initialisms like "BFFs" survive.
func (s *PodService) caseName(name string) string {
	if name == "" {
		return ""
	}
	caser := cases.Title(s.nameLocaleOrDefault())
	words := strings.Split(name, " ")
	for i, w := range words {
		if w == strings.ToLower(w) {
			words[i] = caser.String(w)
		}
	}
	return strings.Join(words, " ")
}

// nameLocaleOrDefault returns the configured casing locale or English if unset.
func (s *PodService) nameLocaleOrDefault() language.Tag {
	if s.NameLocale == language.Und {
		return language.English
	}
	return s.NameLocale
}

// normalizeName trims whitespace and collapses multiple spaces to one.
func normalizeName(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
