package gamification

import (
	"fmt"
	"time"

	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Achievements returns the full catalog with the current progress and unlock
// state.
func (s *Service) Achievements() ([]models.Achievement, error) {
	var achievements []models.Achievement

	err := s.db.Order("points ASC").Find(&achievements).Error
	if err != nil {
		return nil, fmt.Errorf("getting achievements failed: %w", err)
	}

	return achievements, nil
}

// AchievementProgress computes the current progress metric for one
// achievement.
//
// The dispatch is a closed enumeration over (type, title): milestone titles
// other than "First Steps", "Century Club" and "Financial Guru" report zero
// progress. Savings progress is the current month's savings, never negative.
// "Budget Master" reports 1 only when budgets exist and none is exceeded.
func (s *Service) AchievementProgress(achievement models.Achievement, now time.Time) (decimal.Decimal, error) {
	switch achievement.Type {
	case models.AchievementMilestone:
		var count int64
		err := s.db.Model(&models.Transaction{}).Count(&count).Error
		if err != nil {
			return decimal.Zero, fmt.Errorf("counting transactions failed: %w", err)
		}

		switch achievement.Title {
		case "First Steps":
			if count >= 1 {
				return decimal.NewFromInt(1), nil
			}
			return decimal.Zero, nil

		case "Century Club":
			return decimal.NewFromInt(count), nil

		case "Financial Guru":
			score, err := s.HealthScore(now)
			if err != nil {
				return decimal.Zero, err
			}
			return decimal.NewFromInt(int64(score)), nil
		}

		return decimal.Zero, nil

	case models.AchievementStreak:
		streak, err := s.CurrentStreak(now)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(int64(streak)), nil

	case models.AchievementSavings:
		stats, err := s.analytics.MonthlyStats(types.MonthOf(now))
		if err != nil {
			return decimal.Zero, err
		}

		if stats.Savings.IsNegative() {
			return decimal.Zero, nil
		}
		return stats.Savings, nil

	case models.AchievementSpending:
		if achievement.Title != "Budget Master" {
			return decimal.Zero, nil
		}

		var budgetCount, exceeded int64
		err := s.db.Model(&models.Budget{}).Count(&budgetCount).Error
		if err != nil {
			return decimal.Zero, fmt.Errorf("counting budgets failed: %w", err)
		}

		// Without budgets the achievement cannot be earned yet
		if budgetCount == 0 {
			return decimal.Zero, nil
		}

		err = s.db.
			Model(&models.Budget{}).
			Where("status = ?", models.BudgetStatusExceeded).
			Count(&exceeded).Error
		if err != nil {
			return decimal.Zero, fmt.Errorf("counting exceeded budgets failed: %w", err)
		}

		if exceeded == 0 {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	}

	return decimal.Zero, nil
}

// CheckAndUnlockAchievements recomputes the progress of every achievement
// that is not yet completed and returns those unlocked by this call.
//
// When the progress reaches the requirement, the achievement is completed
// with its progress clamped to the requirement and UnlockedAt set to now.
// Completed achievements are never recomputed, the transition is one-way.
func (s *Service) CheckAndUnlockAchievements(now time.Time) ([]models.Achievement, error) {
	var incomplete []models.Achievement

	err := s.db.Where("completed = ?", false).Find(&incomplete).Error
	if err != nil {
		return nil, fmt.Errorf("getting incomplete achievements failed: %w", err)
	}

	var unlocked []models.Achievement
	for _, achievement := range incomplete {
		progress, err := s.AchievementProgress(achievement, now)
		if err != nil {
			return nil, err
		}

		if progress.GreaterThanOrEqual(achievement.Requirement) {
			unlockedAt := now.In(time.UTC)
			achievement.Progress = achievement.Requirement
			achievement.Completed = true
			achievement.UnlockedAt = &unlockedAt

			err = s.db.Save(&achievement).Error
			if err != nil {
				return nil, fmt.Errorf("unlocking achievement %q failed: %w", achievement.Title, err)
			}

			unlocked = append(unlocked, achievement)
			continue
		}

		if !progress.Equal(achievement.Progress) {
			achievement.Progress = progress

			err = s.db.Save(&achievement).Error
			if err != nil {
				return nil, fmt.Errorf("updating achievement %q failed: %w", achievement.Title, err)
			}
		}
	}

	return unlocked, nil
}
