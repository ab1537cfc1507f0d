package models

import (
	"github.com/shopspring/decimal"
)

// UserStatsID is the primary key of the single user stats row.
const UserStatsID = "main"

// UserStats is the materialized view over streaks, points and the financial
// health score. It is recomputed in full by the gamification engine and must
// never be edited field by field.
type UserStats struct {
	ID string `json:"id" gorm:"primaryKey"`
	Timestamps
	TotalPoints          int64           `json:"totalPoints"`
	CurrentStreak        int             `json:"currentStreak"`
	LongestStreak        int             `json:"longestStreak"`
	FinancialHealthScore int             `json:"financialHealthScore"`
	TotalSavings         decimal.Decimal `json:"totalSavings" gorm:"type:DECIMAL(20,8)"`
	MonthlyGoalProgress  decimal.Decimal `json:"monthlyGoalProgress" gorm:"type:DECIMAL(20,8)"`
	AchievementsUnlocked int             `json:"achievementsUnlocked"`
	Level                int64           `json:"level"`
	NextLevelPoints      int64           `json:"nextLevelPoints"`
}
