package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AchievementType groups achievements by the progress metric they track.
type AchievementType string

const (
	AchievementMilestone AchievementType = "milestone"
	AchievementStreak    AchievementType = "streak"
	AchievementSavings   AchievementType = "savings"
	AchievementSpending  AchievementType = "spending"
)

var ErrAchievementTitleNotUnique = errors.New("the achievement title must be unique")

// Achievement is one entry of the fixed achievement catalog.
//
// Title, Description, Icon, Type, Requirement and Points are seeded once and
// never change. Progress, Completed and UnlockedAt are maintained by the
// gamification engine. Completion is one-way: once Completed is set,
// UnlockedAt and Progress are frozen even if the underlying metric later
// drops below the requirement.
type Achievement struct {
	DefaultModel
	Title       string          `json:"title" gorm:"uniqueIndex"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type"`
	Requirement decimal.Decimal `json:"requirement" gorm:"type:DECIMAL(20,8)"`
	Progress    decimal.Decimal `json:"progress" gorm:"type:DECIMAL(20,8)"`
	Completed   bool            `json:"completed"`
	UnlockedAt  *time.Time      `json:"unlockedAt,omitempty"`
	Points      int64           `json:"points"`
}

// Catalog returns the predefined achievements.
func Catalog() []Achievement {
	return []Achievement{
		{
			Title:       "First Steps",
			Description: "Add your first transaction",
			Icon:        "🚀",
			Type:        AchievementMilestone,
			Requirement: decimal.NewFromInt(1),
			Points:      10,
		},
		{
			Title:       "Consistent Tracker",
			Description: "Add transactions for 7 consecutive days",
			Icon:        "📈",
			Type:        AchievementStreak,
			Requirement: decimal.NewFromInt(7),
			Points:      50,
		},
		{
			Title:       "Savings Champion",
			Description: "Save ₹10,000 in a month",
			Icon:        "💰",
			Type:        AchievementSavings,
			Requirement: decimal.NewFromInt(10000),
			Points:      100,
		},
		{
			Title:       "Budget Master",
			Description: "Stay within budget for all categories in a month",
			Icon:        "🎯",
			Type:        AchievementSpending,
			Requirement: decimal.NewFromInt(1),
			Points:      75,
		},
		{
			Title:       "Century Club",
			Description: "Add 100 transactions",
			Icon:        "💯",
			Type:        AchievementMilestone,
			Requirement: decimal.NewFromInt(100),
			Points:      150,
		},
		{
			Title:       "Big Saver",
			Description: "Save ₹50,000 in a month",
			Icon:        "🏆",
			Type:        AchievementSavings,
			Requirement: decimal.NewFromInt(50000),
			Points:      200,
		},
		{
			Title:       "Streak Master",
			Description: "Maintain a 30-day tracking streak",
			Icon:        "🔥",
			Type:        AchievementStreak,
			Requirement: decimal.NewFromInt(30),
			Points:      300,
		},
		{
			Title:       "Financial Guru",
			Description: "Achieve 90+ financial health score",
			Icon:        "🧠",
			Type:        AchievementMilestone,
			Requirement: decimal.NewFromInt(90),
			Points:      250,
		},
	}
}

// seedAchievements writes the catalog to the database if it is empty.
// Progress and unlock state of existing achievements is never touched.
func seedAchievements(db *gorm.DB) error {
	var count int64
	err := db.Model(&Achievement{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	achievements := Catalog()
	return db.Create(&achievements).Error
}
