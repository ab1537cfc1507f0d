package gamification

import (
	"fmt"
	"time"

	"github.com/paisapal/backend/pkg/models"
)

// streakLookback caps how far CurrentStreak walks into the past.
const streakLookback = 365

// CurrentStreak counts the consecutive calendar days ending at today on which
// at least one transaction was recorded.
//
// The walk starts at today and stops at the first day without a transaction.
// A day without a transaction breaks the streak immediately, there are no
// grace days. The count is capped at 365 days.
func (s *Service) CurrentStreak(today time.Time) (int, error) {
	cutoff := today.In(time.UTC).AddDate(0, 0, -streakLookback)

	var days []string
	err := s.db.
		Model(&models.Transaction{}).
		Where("datetime(date) > datetime(?)", cutoff).
		Distinct().
		Pluck("strftime('%Y-%m-%d', datetime(date))", &days).Error
	if err != nil {
		return 0, fmt.Errorf("getting transaction days failed: %w", err)
	}

	haveTransaction := make(map[string]bool, len(days))
	for _, day := range days {
		haveTransaction[day] = true
	}

	streak := 0
	for day := today.In(time.UTC); streak < streakLookback; day = day.AddDate(0, 0, -1) {
		if !haveTransaction[day.Format("2006-01-02")] {
			break
		}
		streak++
	}

	return streak, nil
}
