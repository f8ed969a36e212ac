package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRun_SeedsDemoData(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var userCount int64
	if err := db.Model(&domain.User{}).Count(&userCount).Error; err != nil || userCount != 4 {
		t.Fatalf("user count = %d err=%v, want 4", userCount, err)
	}

	demo, err := repo.GetUserByUsername(ctx, db, "demo")
	if err != nil {
		t.Fatalf("demo user missing: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(demo.Password), []byte("demo123")); err != nil {
		t.Fatalf("demo password not hashed as expected: %v", err)
	}

	pods, err := repo.ListUserPods(ctx, db, demo.ID)
	if err != nil {
		t.Fatalf("ListUserPods: %v", err)
	}
	if len(pods) != 1 || pods[0].Name != "College Friends" {
		t.Fatalf("unexpected pods: %+v", pods)
	}
	if pods[0].MemberCount != 4 || !pods[0].IsAdmin {
		t.Fatalf("demo should admin a 4-member pod: %+v", pods[0])
	}

	// Everyone else joined as a plain member.
	sarah, err := repo.GetUserByUsername(ctx, db, "sarah_chen")
	if err != nil {
		t.Fatalf("sarah missing: %v", err)
	}
	m, err := repo.GetPodMembership(ctx, db, pods[0].ID, sarah.ID)
	if err != nil || m.IsAdmin {
		t.Fatalf("sarah membership: %+v err=%v", m, err)
	}

	prompt, err := repo.GetCurrentPrompt(ctx, db)
	if err != nil || prompt == nil {
		t.Fatalf("current prompt: %+v err=%v", prompt, err)
	}
	if prompt.Type != domain.ContentTypeHighLow || !prompt.IsActive {
		t.Fatalf("unexpected prompt: %+v", prompt)
	}
	now := time.Now().UTC()
	if now.Before(prompt.WeekStart) || now.After(prompt.WeekEnd.AddDate(0, 0, 1)) {
		t.Fatalf("prompt window does not contain now: %v .. %v", prompt.WeekStart, prompt.WeekEnd)
	}
}

func TestRun_SkipsWhenUsersExist(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	existing := &domain.User{Username: "existing", Email: "existing@example.com", Password: "h", DisplayName: "Existing"}
	if err := repo.CreateUser(ctx, db, existing); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var userCount int64
	if err := db.Model(&domain.User{}).Count(&userCount).Error; err != nil || userCount != 1 {
		t.Fatalf("seeding should be skipped: count=%d err=%v", userCount, err)
	}
	var podCount int64
	if err := db.Model(&domain.Pod{}).Count(&podCount).Error; err != nil || podCount != 0 {
		t.Fatalf("no pods expected: count=%d err=%v", podCount, err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := newSeedDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := Run(ctx, db); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	var userCount int64
	if err := db.Model(&domain.User{}).Count(&userCount).Error; err != nil || userCount != 4 {
		t.Fatalf("second run duplicated data: count=%d err=%v", userCount, err)
	}
}

func TestCurrentWeek(t *testing.T) {
	// Wednesday 2026-08-26 falls in the Sunday 23rd .. Saturday 29th week.
	wed := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	start, end := currentWeek(wed)
	if start.Weekday() != time.Sunday || !start.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if end.Weekday() != time.Saturday || !end.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}

	// A Sunday is its own week start.
	sun := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	start, end = currentWeek(sun)
	if !start.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday week: %v .. %v", start, end)
	}

	// Boundaries follow the input's zone: Sunday morning at UTC+10 is still
	// Saturday in UTC, but the week must start that local Sunday midnight.
	aest := time.FixedZone("AEST", 10*3600)
	early := time.Date(2026, 8, 23, 8, 0, 0, 0, aest)
	start, _ = currentWeek(early)
	if !start.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, aest)) {
		t.Fatalf("zoned week start = %v", start)
	}
}
