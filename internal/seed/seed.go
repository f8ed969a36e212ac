// Package seed populates a fresh database with demo accounts, a demo pod,
// and the current week's prompt so the app is usable immediately after the
// first start. Seeding is skipped entirely once any user exists.
package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"
)

// demoUser is one seeded account before hashing.
type demoUser struct {
	username    string
	email       string
	password    string
	displayName string
}

var demoUsers = []demoUser{
	{"demo", "demo@intouch.app", "demo123", "Demo User"},
	{"sarah_chen", "sarah@example.com", "password123", "Sarah Chen"},
	{"marcus_j", "marcus@example.com", "password123", "Marcus Johnson"},
	{"emma_r", "emma@example.com", "password123", "Emma Rodriguez"},
}

// Run seeds demo data into db unless a user already exists. It creates the
// demo accounts, a "College Friends" pod with every account as a member (the
// demo user as admin), and an active high-low prompt spanning the current
// week. All inserts run in one transaction.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("database already seeded")
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := make([]*domain.User, 0, len(demoUsers))
		for _, du := range demoUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u := &domain.User{
				Username:    du.username,
				Email:       du.email,
				Password:    string(hash),
				DisplayName: du.displayName,
			}
			if err := repo.CreateUser(ctx, tx, u); err != nil {
				return err
			}
			created = append(created, u)
		}

		desc := "Our awesome college friend group staying connected"
		pod := &domain.Pod{
			Name:        "College Friends",
			Description: &desc,
			CreatedBy:   created[0].ID,
		}
		if err := repo.CreatePod(ctx, tx, pod); err != nil {
			return err
		}
		for i, u := range created {
			// First user is admin
			if _, err := repo.AddPodMember(ctx, tx, pod.ID, u.ID, i == 0); err != nil {
				return err
			}
		}

		weekStart, weekEnd := currentWeek(time.Now())
		promptDesc := "Share a moment that made you smile and something that challenged you."
		prompt := &domain.Prompt{
			Title:       "What's your high and low this week?",
			Description: &promptDesc,
			Type:        domain.ContentTypeHighLow,
			IsActive:    true,
			WeekStart:   weekStart,
			WeekEnd:     weekEnd,
		}
		return repo.CreatePrompt(ctx, tx, prompt)
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("username", demoUsers[0].username).
		Msg("database seeded with demo data")
	return nil
}

// currentWeek returns the Sunday-to-Saturday span containing now, at
// midnight boundaries in now's own location.
func currentWeek(now time.Time) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = day.AddDate(0, 0, -int(now.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}
