package gamification

import (
	"fmt"
	"time"

	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// InitializeUserStats returns the singleton user stats row, creating it with
// zero values when it does not exist yet.
func (s *Service) InitializeUserStats() (models.UserStats, error) {
	stats := models.UserStats{
		ID:              models.UserStatsID,
		Level:           1,
		NextLevelPoints: 100,
	}

	err := s.db.FirstOrCreate(&stats, "id = ?", models.UserStatsID).Error
	if err != nil {
		return models.UserStats{}, fmt.Errorf("initializing user stats failed: %w", err)
	}

	return stats, nil
}

// UserStats returns the stored user stats without recomputing them.
func (s *Service) UserStats() (models.UserStats, error) {
	return s.InitializeUserStats()
}

// UpdateUserStats recomputes the full user stats materialized view.
//
// The only value carried over from the previous state is LongestStreak, which
// never decreases. Everything else is derived from the ledger, the budgets
// and the achievement unlock state. The call is idempotent as long as no new
// transactions arrive.
func (s *Service) UpdateUserStats(now time.Time) (models.UserStats, error) {
	stats, err := s.InitializeUserStats()
	if err != nil {
		return models.UserStats{}, err
	}

	streak, err := s.CurrentStreak(now)
	if err != nil {
		return models.UserStats{}, err
	}

	score, err := s.HealthScore(now)
	if err != nil {
		return models.UserStats{}, err
	}

	monthly, err := s.analytics.MonthlyStats(types.MonthOf(now))
	if err != nil {
		return models.UserStats{}, err
	}

	var unlocked int64
	err = s.db.
		Model(&models.Achievement{}).
		Where("completed = ?", true).
		Count(&unlocked).Error
	if err != nil {
		return models.UserStats{}, fmt.Errorf("counting unlocked achievements failed: %w", err)
	}

	var points int64
	err = s.db.
		Model(&models.Achievement{}).
		Where("completed = ?", true).
		Select("COALESCE(SUM(points), 0)").
		Scan(&points).Error
	if err != nil {
		return models.UserStats{}, fmt.Errorf("summing achievement points failed: %w", err)
	}

	level := points/100 + 1

	goalProgress := decimal.Zero
	if s.MonthlyGoal.IsPositive() {
		goalProgress = monthly.Savings.Div(s.MonthlyGoal).Mul(oneHundred)
		if goalProgress.GreaterThan(oneHundred) {
			goalProgress = oneHundred
		}
	}

	stats.CurrentStreak = streak
	if streak > stats.LongestStreak {
		stats.LongestStreak = streak
	}
	stats.FinancialHealthScore = score
	stats.TotalSavings = monthly.Savings
	stats.AchievementsUnlocked = int(unlocked)
	stats.TotalPoints = points
	stats.Level = level
	stats.NextLevelPoints = level * 100
	stats.MonthlyGoalProgress = goalProgress

	err = s.db.Save(&stats).Error
	if err != nil {
		return models.UserStats{}, fmt.Errorf("saving user stats failed: %w", err)
	}

	return stats, nil
}
