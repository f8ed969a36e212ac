package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
)

func week(t *testing.T, daysAgo int) (time.Time, time.Time) {
	t.Helper()
	start := time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour)
	return start, start.AddDate(0, 0, 6)
}

func TestCreatePrompt_AndGet(t *testing.T) {
	db := newTestDB(t, &domain.Prompt{})
	ctx := context.Background()

	ws, we := week(t, 0)
	desc := "share a moment that made you smile"
	p := &domain.Prompt{
		Title:       "What's your high and low this week?",
		Description: &desc,
		Type:        domain.ContentTypeHighLow,
		IsActive:    true,
		WeekStart:   ws,
		WeekEnd:     we,
	}
	if err := CreatePrompt(ctx, db, p); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := GetPrompt(ctx, db, p.ID)
	if err != nil || got.Title != p.Title {
		t.Fatalf("GetPrompt: %+v err=%v", got, err)
	}
	if _, err := GetPrompt(ctx, db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing prompt: err=%v", err)
	}
}

func TestGetCurrentPrompt_NoneActive(t *testing.T) {
	db := newTestDB(t, &domain.Prompt{})
	ctx := context.Background()

	p, err := GetCurrentPrompt(ctx, db)
	if err != nil {
		t.Fatalf("GetCurrentPrompt: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil prompt when table is empty, got %+v", p)
	}

	// An inactive prompt is never current.
	ws, we := week(t, 0)
	if err := CreatePrompt(ctx, db, &domain.Prompt{Title: "retired", Type: "text", IsActive: false, WeekStart: ws, WeekEnd: we}); err != nil {
		t.Fatalf("seed prompt: %v", err)
	}
	p, err = GetCurrentPrompt(ctx, db)
	if err != nil || p != nil {
		t.Fatalf("expected nil prompt with only inactive rows, got %+v err=%v", p, err)
	}
}

func TestGetCurrentPrompt_PicksLatestActive(t *testing.T) {
	db := newTestDB(t, &domain.Prompt{})
	ctx := context.Background()

	oldStart, oldEnd := week(t, 14)
	newStart, newEnd := week(t, 0)
	if err := CreatePrompt(ctx, db, &domain.Prompt{Title: "two weeks ago", Type: "text", IsActive: true, WeekStart: oldStart, WeekEnd: oldEnd}); err != nil {
		t.Fatalf("seed prompt: %v", err)
	}
	latest := &domain.Prompt{Title: "this week", Type: domain.ContentTypeHighLow, IsActive: true, WeekStart: newStart, WeekEnd: newEnd}
	if err := CreatePrompt(ctx, db, latest); err != nil {
		t.Fatalf("seed prompt: %v", err)
	}

	p, err := GetCurrentPrompt(ctx, db)
	if err != nil {
		t.Fatalf("GetCurrentPrompt: %v", err)
	}
	if p == nil || p.ID != latest.ID {
		t.Fatalf("expected latest active prompt, got %+v", p)
	}
}

func TestCountResponsesForPrompt_ScopedToPod(t *testing.T) {
	db := newTestDB(t, &domain.Prompt{}, &domain.Pod{}, &domain.Response{})
	ctx := context.Background()

	seed := func(userID, promptID, podID int) {
		t.Helper()
		r := &domain.Response{PromptID: promptID, PodID: podID, UserID: userID, Content: `{"type":"text","text":"x"}`}
		if err := CreateResponse(ctx, db, r); err != nil {
			t.Fatalf("seed response: %v", err)
		}
	}
	seed(1, 10, 100)
	seed(2, 10, 100)
	seed(3, 10, 200) // other pod
	seed(1, 11, 100) // other prompt

	n, err := CountResponsesForPrompt(ctx, db, 10, 100)
	if err != nil {
		t.Fatalf("CountResponsesForPrompt: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}
