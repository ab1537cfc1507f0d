package models_test

import (
	"github.com/paisapal/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetCategoryUnique() {
	budget := models.Budget{
		Category:     models.CategoryFood,
		MonthlyLimit: decimal.NewFromInt(8000),
	}
	err := suite.db.Create(&budget).Error
	assert.Nil(suite.T(), err)

	duplicate := models.Budget{
		Category:     models.CategoryFood,
		MonthlyLimit: decimal.NewFromInt(9000),
	}
	err = suite.db.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetExists)

	var count int64
	err = suite.db.Model(&models.Budget{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count, "the failed create must not leave a row behind")
}

func (suite *TestSuiteStandard) TestBudgetLimitNotPositive() {
	for _, limit := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		budget := models.Budget{
			Category:     models.CategoryTravel,
			MonthlyLimit: limit,
		}

		err := suite.db.Create(&budget).Error
		assert.ErrorIs(suite.T(), err, models.ErrBudgetLimitNotPositive, "limit %s was accepted", limit)
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryInvalid() {
	budget := models.Budget{
		Category:     "Gambling",
		MonthlyLimit: decimal.NewFromInt(100),
	}

	err := suite.db.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInvalid)
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	var budget models.Budget

	err := suite.db.First(&budget, "category = ?", models.CategoryRent).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no budget matching your query")
}
