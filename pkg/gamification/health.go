package gamification

import (
	"fmt"
	"math"
	"time"

	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
)

// HealthScore computes the 0-100 financial health composite for the month
// containing now.
//
// The components are: savings rate (up to 40 points, 20% rate scores full),
// budget adherence (up to 30 points, share of budgets not exceeded),
// consistency (up to 20 points, 2 per streak day) and categorization (up to
// 10 points, share of transactions not filed under "Other"). An empty ledger
// scores 0.
func (s *Service) HealthScore(now time.Time) (int, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("counting transactions failed: %w", err)
	}

	if total == 0 {
		return 0, nil
	}

	score := 0.0
	month := types.MonthOf(now)

	// Savings rate: no contribution without income
	income, err := s.analytics.TotalIncome(month)
	if err != nil {
		return 0, err
	}

	expenses, err := s.analytics.TotalExpenses(month)
	if err != nil {
		return 0, err
	}

	if income.IsPositive() {
		savingsRate := income.Sub(expenses).Div(income).InexactFloat64() * 100
		score += math.Min(40, savingsRate*2)
	}

	// Budget adherence: no contribution without budgets
	var budgetCount, withinLimit int64
	err = s.db.Model(&models.Budget{}).Count(&budgetCount).Error
	if err != nil {
		return 0, fmt.Errorf("counting budgets failed: %w", err)
	}

	if budgetCount > 0 {
		err = s.db.
			Model(&models.Budget{}).
			Where("status <> ?", models.BudgetStatusExceeded).
			Count(&withinLimit).Error
		if err != nil {
			return 0, fmt.Errorf("counting budgets within limit failed: %w", err)
		}

		score += float64(withinLimit) / float64(budgetCount) * 30
	}

	// Consistency
	streak, err := s.CurrentStreak(now)
	if err != nil {
		return 0, err
	}
	score += math.Min(20, float64(streak)*2)

	// Categorization
	var categorized int64
	err = s.db.
		Model(&models.Transaction{}).
		Where("category <> ?", models.CategoryOther).
		Count(&categorized).Error
	if err != nil {
		return 0, fmt.Errorf("counting categorized transactions failed: %w", err)
	}
	score += float64(categorized) / float64(total) * 10

	return int(math.Round(math.Min(100, math.Max(0, score)))), nil
}
