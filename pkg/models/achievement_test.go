package models_test

import (
	"github.com/paisapal/backend/internal/test"
	"github.com/paisapal/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAchievementsSeeded() {
	var achievements []models.Achievement

	err := suite.db.Find(&achievements).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), achievements, len(models.Catalog()))

	for _, achievement := range achievements {
		assert.False(suite.T(), achievement.Completed)
		assert.Nil(suite.T(), achievement.UnlockedAt)
		assert.True(suite.T(), achievement.Progress.IsZero())
	}
}

func (suite *TestSuiteStandard) TestAchievementSeedIdempotent() {
	dsn := test.TmpFile(suite.T())

	db, err := models.Connect(dsn)
	assert.Nil(suite.T(), err)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	// Reconnecting runs the seed again, it must not duplicate rows.
	db, err = models.Connect(dsn)
	assert.Nil(suite.T(), err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	var count int64
	err = db.Model(&models.Achievement{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(len(models.Catalog())), count)
}

func (suite *TestSuiteStandard) TestAchievementTitleUnique() {
	achievement := models.Achievement{
		Title:       "First Steps",
		Type:        models.AchievementMilestone,
		Requirement: decimal.NewFromInt(1),
	}

	err := suite.db.Create(&achievement).Error
	assert.ErrorIs(suite.T(), err, models.ErrAchievementTitleNotUnique)
}

func (suite *TestSuiteStandard) TestCatalogContents() {
	catalog := models.Catalog()

	requirements := map[string]int64{
		"First Steps":        1,
		"Consistent Tracker": 7,
		"Savings Champion":   10000,
		"Budget Master":      1,
		"Century Club":       100,
		"Big Saver":          50000,
		"Streak Master":      30,
		"Financial Guru":     90,
	}

	points := map[string]int64{
		"First Steps":        10,
		"Consistent Tracker": 50,
		"Savings Champion":   100,
		"Budget Master":      75,
		"Century Club":       150,
		"Big Saver":          200,
		"Streak Master":      300,
		"Financial Guru":     250,
	}

	assert.Len(suite.T(), catalog, len(requirements))

	for _, achievement := range catalog {
		requirement, ok := requirements[achievement.Title]
		assert.True(suite.T(), ok, "unexpected achievement %q", achievement.Title)
		assert.True(suite.T(), achievement.Requirement.Equal(decimal.NewFromInt(requirement)), "%s requirement is %s", achievement.Title, achievement.Requirement)
		assert.Equal(suite.T(), points[achievement.Title], achievement.Points, "%s points", achievement.Title)
		assert.NotEmpty(suite.T(), achievement.Icon)
		assert.NotEmpty(suite.T(), achievement.Description)
	}
}
