// Package advisor answers free-text financial questions. It classifies a
// query with deterministic keyword matching, runs the matching computation
// over the ledger and renders the result into a localized template.
package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paisapal/backend/pkg/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Intent is the classified category of a user query.
type Intent uint8

const (
	IntentUnknown Intent = iota
	IntentSavingsAnalysis
	IntentSavingsGoal
	IntentSavingsGeneral
	IntentTopExpense
	IntentTopCategory
	IntentOverspendCategory
	IntentOverspendAnalysis
	IntentInvestmentRecommendation
	IntentInvestmentGeneral
	IntentSavingsProjection
	IntentIncomeAnalysis
	IntentExpenseAnalysis
	IntentFinancialAdvice
)

var intentNames = map[Intent]string{
	IntentUnknown:                  "unknown",
	IntentSavingsAnalysis:          "savings_analysis",
	IntentSavingsGoal:              "savings_goal",
	IntentSavingsGeneral:           "savings_general",
	IntentTopExpense:               "top_expense",
	IntentTopCategory:              "top_category",
	IntentOverspendCategory:        "overspend_category",
	IntentOverspendAnalysis:        "overspend_analysis",
	IntentInvestmentRecommendation: "investment_recommendation",
	IntentInvestmentGeneral:        "investment_general",
	IntentSavingsProjection:        "savings_projection",
	IntentIncomeAnalysis:           "income_analysis",
	IntentExpenseAnalysis:          "expense_analysis",
	IntentFinancialAdvice:          "financial_advice",
}

func (i Intent) String() string {
	return intentNames[i]
}

// Match is the classification result: the intent, a fixed confidence and the
// parameters extracted from the query for the intents that carry any.
type Match struct {
	Intent     Intent
	Confidence float64

	// Category is set for overspend and projection intents.
	Category models.Category
	// Amount is set for investment recommendations.
	Amount decimal.Decimal
	// Percent is set for savings projections.
	Percent int64
}

var (
	// amountPattern matches an amount with optional comma grouping and an
	// optional currency symbol, e.g. "₹50,000".
	amountPattern = regexp.MustCompile(`₹?(\d+(?:,\d+)*)`)

	// percentPattern matches a reduction like "15%".
	percentPattern = regexp.MustCompile(`(\d+)%`)
)

// containsAny reports whether the query contains any of the keywords.
func containsAny(query string, keywords ...string) bool {
	for _, keyword := range keywords {
		if glob.Glob("*"+keyword+"*", query) {
			return true
		}
	}

	return false
}

// Detect classifies a free-text query.
//
// The keyword groups are checked in a fixed order with the more specific
// sub-checks first, and the first match wins, so classification is fully
// deterministic. Each concept carries an English and a Hindi keyword set.
// Queries that match no group yield IntentUnknown with low confidence.
func Detect(query string) Match {
	q := strings.ToLower(query)

	// Savings analysis
	if containsAny(q, "save", "saving", "बचत", "बचती") {
		if containsAny(q, "more", "ज्यादा", "अधिक") {
			return Match{Intent: IntentSavingsAnalysis, Confidence: 0.9}
		}
		if containsAny(q, "goal", "लक्ष्य", "उद्दिष्ट") {
			return Match{Intent: IntentSavingsGoal, Confidence: 0.8}
		}
		return Match{Intent: IntentSavingsGeneral, Confidence: 0.7}
	}

	// Top expenses
	if containsAny(q, "top", "highest", "सबसे", "मुख्य") {
		if containsAny(q, "expense", "खर्च", "खर्चा") {
			return Match{Intent: IntentTopExpense, Confidence: 0.9}
		}
		if containsAny(q, "category", "श्रेणी") {
			return Match{Intent: IntentTopCategory, Confidence: 0.8}
		}
	}

	// Overspending analysis
	if containsAny(q, "overspend", "over", "ज्यादा", "अधिक") {
		if containsAny(q, "food", "खाना", "अन्न") {
			return Match{Intent: IntentOverspendCategory, Confidence: 0.9, Category: models.CategoryFood}
		}
		if containsAny(q, "shopping", "शॉपिंग") {
			return Match{Intent: IntentOverspendCategory, Confidence: 0.9, Category: models.CategoryShopping}
		}
		return Match{Intent: IntentOverspendAnalysis, Confidence: 0.8}
	}

	// Investment recommendations
	if containsAny(q, "invest", "investment", "निवेश", "गुंतवणूक") {
		if amount, ok := extractAmount(q); ok {
			return Match{Intent: IntentInvestmentRecommendation, Confidence: 0.9, Amount: amount}
		}
		return Match{Intent: IntentInvestmentGeneral, Confidence: 0.7}
	}

	// Savings projection with cuts. Only recognized when a percentage and a
	// known category keyword occur together, otherwise the query falls
	// through to the generic checks below.
	if containsAny(q, "cut", "reduce", "कम", "घट") {
		if m := percentPattern.FindStringSubmatch(q); m != nil {
			percent, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				if containsAny(q, "food", "dining", "खाना") {
					return Match{Intent: IntentSavingsProjection, Confidence: 0.9, Category: models.CategoryFood, Percent: percent}
				}
				if containsAny(q, "shopping", "शॉपिंग") {
					return Match{Intent: IntentSavingsProjection, Confidence: 0.9, Category: models.CategoryShopping, Percent: percent}
				}
			}
		}
	}

	// Income analysis
	if containsAny(q, "income", "earn", "आय", "कमाई") {
		return Match{Intent: IntentIncomeAnalysis, Confidence: 0.8}
	}

	// Expense analysis
	if containsAny(q, "expense", "spend", "खर्च", "खर्चा") {
		return Match{Intent: IntentExpenseAnalysis, Confidence: 0.8}
	}

	// General financial advice
	if containsAny(q, "advice", "tip", "सलाह", "सूचना") {
		return Match{Intent: IntentFinancialAdvice, Confidence: 0.7}
	}

	return Match{Intent: IntentUnknown, Confidence: 0.1}
}

// extractAmount parses the first amount in the query.
func extractAmount(query string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(query)
	if m == nil {
		return decimal.Zero, false
	}

	amount, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return decimal.Zero, false
	}

	return decimal.NewFromInt(amount), true
}
