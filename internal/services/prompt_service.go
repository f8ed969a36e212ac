// Package services – PromptService
//
// This file implements PromptService, the read side of weekly prompts: the
// current-prompt selection and the pod-scoped stats view. Stats are gated on
// pod membership like every other pod-scoped read.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PromptService provides prompt reads. Prompts are written only by the seed
// path, so there is no mutation surface here.
type PromptService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now returns the current time; overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// NewPromptService constructs a PromptService.
func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{DB: db}
}

// Current returns the most recently started active prompt, or nil when no
// prompt is active. "No active prompt" is a valid state, not an error.
func (s *PromptService) Current(ctx context.Context) (*domain.Prompt, error) {
	return repo.GetCurrentPrompt(ctx, s.DB)
}

// StatsForPod returns the prompt enriched with pod-scoped aggregates:
// response count for (prompt, pod), total pod members, and whole days
// remaining until the prompt's week ends (never negative).
//
// The caller must be a member of podID; ErrPodNotFound / ErrNotPodMember
// keep "doesn't exist" distinct from "not authorized". An unknown prompt id
// yields ErrPromptNotFound.
func (s *PromptService) StatsForPod(ctx context.Context, callerID, promptID, podID int) (*domain.PromptWithStats, error) {
	tr := otel.Tracer("services/PromptService")
	ctx, span := tr.Start(ctx, "StatsForPod",
		trace.WithAttributes(
			attribute.Int("prompt.id", promptID),
			attribute.Int("pod.id", podID),
		),
	)
	defer span.End()

	if err := requireMemberTx(ctx, s.DB, callerID, podID); err != nil {
		return nil, err
	}

	prompt, err := repo.GetPrompt(ctx, s.DB, promptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	responseCount, err := repo.CountResponsesForPrompt(ctx, s.DB, promptID, podID)
	if err != nil {
		return nil, err
	}
	totalMembers, err := repo.CountPodMembers(ctx, s.DB, podID)
	if err != nil {
		return nil, err
	}

	return &domain.PromptWithStats{
		Prompt:        *prompt,
		ResponseCount: int(responseCount),
		TotalMembers:  int(totalMembers),
		DaysRemaining: s.daysRemaining(prompt.WeekEnd),
	}, nil
}

// daysRemaining counts the whole days from now until weekEnd, floored at 0.
func (s *PromptService) daysRemaining(weekEnd time.Time) int {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	if !weekEnd.After(now) {
		return 0
	}
	return int(weekEnd.Sub(now).Hours() / 24)
}
