package models_test

import (
	"strings"
	"time"

	"github.com/paisapal/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := suite.createTestTransaction(models.Expense, 120.5, models.CategoryFood, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))

	assert.NotZero(suite.T(), transaction.ID)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(120.5)))
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	transaction := models.Transaction{
		Type:     "transfer",
		Amount:   decimal.NewFromInt(10),
		Category: models.CategoryFood,
	}

	err := suite.db.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		transaction := models.Transaction{
			Type:     models.Expense,
			Amount:   amount,
			Category: models.CategoryFood,
		}

		err := suite.db.Create(&transaction).Error
		assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotPositive, "amount %s was accepted", amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionCategoryInvalid() {
	transaction := models.Transaction{
		Type:     models.Expense,
		Amount:   decimal.NewFromInt(10),
		Category: "Gambling",
	}

	err := suite.db.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInvalid)
}

func (suite *TestSuiteStandard) TestTransactionNoteTooLong() {
	transaction := models.Transaction{
		Type:     models.Expense,
		Amount:   decimal.NewFromInt(10),
		Category: models.CategoryFood,
		Note:     strings.Repeat("x", models.NoteMaxLength+1),
	}

	err := suite.db.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrNoteTooLong)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := suite.createTestTransaction(models.Income, 100, models.CategoryOther, time.Time{})

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateNormalizedToUTC() {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		suite.T().Skip("tzdata not available")
	}

	transaction := suite.createTestTransaction(models.Expense, 10, models.CategoryFood, time.Date(2025, 3, 14, 1, 0, 0, 0, shanghai))

	var reread models.Transaction
	err = suite.db.First(&reread, "id = ?", transaction.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, reread.Date.Location())
}

func (suite *TestSuiteStandard) TestCategoryValid() {
	for _, category := range models.Categories {
		assert.True(suite.T(), category.Valid(), "%s should be valid", category)
	}

	assert.False(suite.T(), models.Category("Gambling").Valid())
	assert.False(suite.T(), models.Category("").Valid())
}
