// Package gamification computes streaks, the financial health score,
// achievement unlock state and the aggregated user stats.
package gamification

import (
	"github.com/paisapal/backend/pkg/analytics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMonthlyGoal is the savings goal used for the monthly goal progress
// when the caller does not configure one.
var DefaultMonthlyGoal = decimal.NewFromInt(20000)

// Service computes all gamification metrics.
type Service struct {
	db        *gorm.DB
	analytics *analytics.Service

	// MonthlyGoal is the savings target used for UserStats.MonthlyGoalProgress.
	MonthlyGoal decimal.Decimal
}

// New returns a gamification service operating on the given database handle.
func New(db *gorm.DB) *Service {
	return &Service{
		db:          db,
		analytics:   analytics.New(db),
		MonthlyGoal: DefaultMonthlyGoal,
	}
}
