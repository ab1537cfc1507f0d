package advisor_test

import (
	"strings"

	"github.com/paisapal/backend/pkg/advisor"
	"github.com/paisapal/backend/pkg/localize"
	"github.com/paisapal/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// echo returns the key itself so tests can assert on the selected template
// and the substituted values without depending on the wording.
func echo(key string) string {
	return key
}

// keyWith builds a template echoing the key and selected placeholders,
// e.g. "ai.top_expense category={category}".
func keyWith(placeholders ...string) advisor.Translator {
	return func(key string) string {
		parts := []string{key}
		for _, placeholder := range placeholders {
			parts = append(parts, placeholder+"={"+placeholder+"}")
		}
		return strings.Join(parts, " ")
	}
}

func plain(amount decimal.Decimal) string {
	return amount.String()
}

func (suite *TestSuiteStandard) responder(translate advisor.Translator) *advisor.Responder {
	return advisor.NewResponder(suite.advisor, translate, plain)
}

func (suite *TestSuiteStandard) TestRespondSavingsAnalysis() {
	suite.createTestTransaction(models.Income, 50000, models.CategoryOther, day(1))
	suite.createTestTransaction(models.Expense, 20000, models.CategoryRent, day(2))

	response := suite.responder(keyWith("savings", "rate")).Respond("how can I save more money", march)

	assert.Equal(suite.T(), advisor.IntentSavingsAnalysis, response.Intent)
	assert.Equal(suite.T(), 0.9, response.Confidence)

	// 60% savings rate is excellent
	assert.Contains(suite.T(), response.Text, "ai.savings.excellent")
	assert.Contains(suite.T(), response.Text, "savings=30000")
	assert.Contains(suite.T(), response.Text, "rate=60")
}

func (suite *TestSuiteStandard) TestRespondSavingsTiers() {
	// 15% savings rate lands in the good tier
	suite.createTestTransaction(models.Income, 10000, models.CategoryOther, day(1))
	suite.createTestTransaction(models.Expense, 8500, models.CategoryRent, day(2))

	response := suite.responder(echo).Respond("how can I save more money", march)
	assert.Equal(suite.T(), "ai.savings.good", response.Text)
}

func (suite *TestSuiteStandard) TestRespondSavingsNoIncome() {
	suite.createTestTransaction(models.Expense, 500, models.CategoryFood, day(1))

	response := suite.responder(echo).Respond("how can I save more money", march)
	assert.Equal(suite.T(), "ai.savings.needs_improvement", response.Text)
}

func (suite *TestSuiteStandard) TestRespondTopExpense() {
	suite.createTestTransaction(models.Expense, 12000, models.CategoryRent, day(1))
	suite.createTestTransaction(models.Expense, 3000, models.CategoryFood, day(2))

	response := suite.responder(keyWith("category", "amount")).Respond("what is my top expense", march)

	assert.Contains(suite.T(), response.Text, "ai.top_expense")
	assert.Contains(suite.T(), response.Text, "category=Rent")
	assert.Contains(suite.T(), response.Text, "amount=12000")
}

func (suite *TestSuiteStandard) TestRespondNoExpenses() {
	response := suite.responder(echo).Respond("what is my top expense", march)
	assert.Equal(suite.T(), "ai.no_expenses", response.Text)
}

func (suite *TestSuiteStandard) TestRespondOverspend() {
	suite.createTestTransaction(models.Expense, 10000, models.CategoryFood, day(3))

	response := suite.responder(keyWith("category", "overspend")).Respond("am I overspending on food", march)

	assert.Contains(suite.T(), response.Text, "ai.overspend.category")
	assert.Contains(suite.T(), response.Text, "category=Food")
	assert.Contains(suite.T(), response.Text, "overspend=2000")
}

func (suite *TestSuiteStandard) TestRespondOverspendWithinBudget() {
	suite.createTestTransaction(models.Expense, 500, models.CategoryFood, day(3))

	response := suite.responder(keyWith("category")).Respond("am I overspending on food", march)

	assert.Contains(suite.T(), response.Text, "ai.overspend.within_budget")
	assert.Contains(suite.T(), response.Text, "category=Food")
}

func (suite *TestSuiteStandard) TestRespondInvestment() {
	response := suite.responder(keyWith("type", "amount")).Respond("where should I invest ₹50,000", march)

	assert.Contains(suite.T(), response.Text, "ai.investment.recommendation")
	assert.Contains(suite.T(), response.Text, "type=Mutual Funds")
	assert.Contains(suite.T(), response.Text, "amount=30000")
}

func (suite *TestSuiteStandard) TestRespondInvestmentSmallAmount() {
	response := suite.responder(keyWith("type")).Respond("invest 10000", march)
	assert.Contains(suite.T(), response.Text, "type=Fixed Deposits")
}

func (suite *TestSuiteStandard) TestRespondProjection() {
	suite.createTestTransaction(models.Income, 50000, models.CategoryOther, day(1))
	suite.createTestTransaction(models.Expense, 10000, models.CategoryFood, day(5))

	response := suite.responder(keyWith("category", "percent", "current", "projected", "increase")).
		Respond("what if I cut food spending by 20%", march)

	assert.Contains(suite.T(), response.Text, "ai.savings_projection.projection")
	assert.Contains(suite.T(), response.Text, "category=Food")
	assert.Contains(suite.T(), response.Text, "percent=20")
	assert.Contains(suite.T(), response.Text, "current=40000")
	assert.Contains(suite.T(), response.Text, "increase=2000")
	assert.Contains(suite.T(), response.Text, "projected=42000")
}

func (suite *TestSuiteStandard) TestRespondIncomeAndExpenses() {
	suite.createTestTransaction(models.Income, 45000, models.CategoryOther, day(1))
	suite.createTestTransaction(models.Expense, 4500, models.CategoryFood, day(2))

	response := suite.responder(keyWith("income")).Respond("how much do I earn", march)
	assert.Contains(suite.T(), response.Text, "ai.income.analysis")
	assert.Contains(suite.T(), response.Text, "income=45000")

	response = suite.responder(keyWith("expenses")).Respond("how much did I spend", march)
	assert.Contains(suite.T(), response.Text, "ai.expense.analysis")
	assert.Contains(suite.T(), response.Text, "expenses=4500")
}

func (suite *TestSuiteStandard) TestRespondAdvice() {
	response := suite.responder(echo).Respond("give me a financial tip", march)

	assert.Equal(suite.T(), advisor.IntentFinancialAdvice, response.Intent)
	assert.True(suite.T(), strings.HasPrefix(response.Text, "ai.advice."), "text is %q", response.Text)
}

func (suite *TestSuiteStandard) TestRespondUnknown() {
	response := suite.responder(echo).Respond("what's the weather like", march)

	assert.Equal(suite.T(), advisor.IntentUnknown, response.Intent)
	assert.Equal(suite.T(), "ai.unknown_query", response.Text)
}

func (suite *TestSuiteStandard) TestRespondUnhandledIntent() {
	// Intents without a computation fall back to the unknown answer
	response := suite.responder(echo).Respond("show my savings", march)

	assert.Equal(suite.T(), advisor.IntentSavingsGeneral, response.Intent)
	assert.Equal(suite.T(), "ai.unknown_query", response.Text)
}

func (suite *TestSuiteStandard) TestRespondDatabaseError() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()

	response := suite.responder(echo).Respond("what is my top expense", march)
	assert.Equal(suite.T(), "ai.error", response.Text)
}

func (suite *TestSuiteStandard) TestQuickActions() {
	actions := advisor.QuickActions(localize.NewTranslator("en"))

	assert.Len(suite.T(), actions, 5)
	for _, action := range actions {
		assert.NotEmpty(suite.T(), action)
		assert.False(suite.T(), strings.HasPrefix(action, "ai."), "quick action %q is not translated", action)
	}
}
