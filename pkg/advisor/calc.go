package advisor

import (
	"github.com/paisapal/backend/pkg/analytics"
	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Service answers the computational side of advisor queries against the
// ledger database.
type Service struct {
	db        *gorm.DB
	analytics *analytics.Service
}

// New returns an advisor service for the database.
func New(db *gorm.DB) *Service {
	return &Service{db: db, analytics: analytics.New(db)}
}

// Projection is the estimated effect of cutting spending in one category.
type Projection struct {
	Category         models.Category
	Percent          int64
	CurrentSavings   decimal.Decimal
	MonthlySaving    decimal.Decimal
	ProjectedSavings decimal.Decimal

	// PercentageIncrease is invalid when there are no current savings to
	// compare against.
	PercentageIncrease decimal.NullDecimal
}

// ProjectSavingsWithCut estimates the savings for the month if spending in
// the category were reduced by the given percentage.
func (s Service) ProjectSavingsWithCut(month types.Month, category models.Category, percent int64) (Projection, error) {
	spent, err := s.analytics.CategoryExpenses(month, category)
	if err != nil {
		return Projection{}, err
	}

	stats, err := s.analytics.MonthlyStats(month)
	if err != nil {
		return Projection{}, err
	}

	saving := spent.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))

	projection := Projection{
		Category:         category,
		Percent:          percent,
		CurrentSavings:   stats.Savings,
		MonthlySaving:    saving,
		ProjectedSavings: stats.Savings.Add(saving),
	}

	if stats.Savings.IsPositive() {
		projection.PercentageIncrease = decimal.NewNullDecimal(
			saving.Div(stats.Savings).Mul(decimal.NewFromInt(100)))
	}

	return projection, nil
}

// Overspend describes spending in a category relative to its reference limit.
type Overspend struct {
	Category            models.Category
	Spent               decimal.Decimal
	Limit               decimal.Decimal
	Overspend           decimal.Decimal
	OverspendPercentage decimal.Decimal
}

// referenceLimits are the built-in monthly reference amounts used to judge
// overspending when the user has not configured a budget for a category.
var referenceLimits = map[models.Category]decimal.Decimal{
	models.CategoryFood:          decimal.NewFromInt(8000),
	models.CategoryTravel:        decimal.NewFromInt(5000),
	models.CategoryRent:          decimal.NewFromInt(15000),
	models.CategoryShopping:      decimal.NewFromInt(3000),
	models.CategoryBills:         decimal.NewFromInt(5000),
	models.CategoryHealth:        decimal.NewFromInt(2000),
	models.CategoryEntertainment: decimal.NewFromInt(2000),
	models.CategoryGroceries:     decimal.NewFromInt(4000),
	models.CategoryOther:         decimal.NewFromInt(1000),
}

// OverspendCategories returns the categories whose spending in the month
// exceeds the reference limit, ordered by overspend percentage descending.
func (s Service) OverspendCategories(month types.Month) ([]Overspend, error) {
	sums, err := s.analytics.CategorySums(month)
	if err != nil {
		return nil, err
	}

	var overspends []Overspend
	for _, sum := range sums {
		limit, ok := referenceLimits[sum.Category]
		if !ok || sum.Sum.LessThanOrEqual(limit) {
			continue
		}

		over := sum.Sum.Sub(limit)
		overspends = append(overspends, Overspend{
			Category:            sum.Category,
			Spent:               sum.Sum,
			Limit:               limit,
			Overspend:           over,
			OverspendPercentage: over.Div(limit).Mul(decimal.NewFromInt(100)),
		})
	}

	slices.SortFunc(overspends, func(a, b Overspend) int {
		return b.OverspendPercentage.Cmp(a.OverspendPercentage)
	})

	return overspends, nil
}

// Investment is a recommendation for a lump sum.
type Investment struct {
	Type           string
	Amount         decimal.Decimal
	Risk           string
	Description    string
	ExpectedReturn string
}

// InvestmentRecommendation suggests an instrument for the amount. Larger
// amounts get equity exposure with a fraction held back, smaller ones go to
// capital-protected instruments in full.
func InvestmentRecommendation(amount decimal.Decimal) Investment {
	switch {
	case amount.GreaterThanOrEqual(decimal.NewFromInt(50000)):
		return Investment{
			Type:           "Mutual Funds",
			Amount:         amount.Mul(decimal.NewFromFloat(0.6)),
			Risk:           "medium",
			Description:    "Diversified equity mutual funds for long-term growth",
			ExpectedReturn: "12-15% annually",
		}
	case amount.GreaterThanOrEqual(decimal.NewFromInt(25000)):
		return Investment{
			Type:           "Index Funds",
			Amount:         amount.Mul(decimal.NewFromFloat(0.7)),
			Risk:           "medium",
			Description:    "Low-cost index funds tracking market performance",
			ExpectedReturn: "10-12% annually",
		}
	case amount.GreaterThanOrEqual(decimal.NewFromInt(10000)):
		return Investment{
			Type:           "Fixed Deposits",
			Amount:         amount.Mul(decimal.NewFromFloat(0.8)),
			Risk:           "low",
			Description:    "Government-backed fixed deposits for stable returns",
			ExpectedReturn: "6-8% annually",
		}
	default:
		return Investment{
			Type:           "Savings Account",
			Amount:         amount,
			Risk:           "low",
			Description:    "High-yield savings account for liquidity",
			ExpectedReturn: "4-6% annually",
		}
	}
}

// SavingGoal is a suggested monthly saving target.
type SavingGoal struct {
	Amount decimal.Decimal
	Tier   string
}

// MonthlySavingGoal suggests how much of the current savings to target each
// month, based on the savings rate. A higher rate means the current habit is
// sustainable and most of it can be kept as the target.
func MonthlySavingGoal(income, expenses decimal.Decimal) SavingGoal {
	savings := income.Sub(expenses)
	if !income.IsPositive() {
		return SavingGoal{Amount: savings.Mul(decimal.NewFromFloat(0.5)), Tier: "needs_improvement"}
	}

	rate := savings.Div(income)

	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromFloat(0.3)):
		return SavingGoal{Amount: savings.Mul(decimal.NewFromFloat(0.8)), Tier: "excellent"}
	case rate.GreaterThanOrEqual(decimal.NewFromFloat(0.2)):
		return SavingGoal{Amount: savings.Mul(decimal.NewFromFloat(0.9)), Tier: "good"}
	case rate.GreaterThanOrEqual(decimal.NewFromFloat(0.1)):
		return SavingGoal{Amount: savings.Mul(decimal.NewFromFloat(0.95)), Tier: "moderate"}
	default:
		return SavingGoal{Amount: savings.Mul(decimal.NewFromFloat(0.5)), Tier: "needs_improvement"}
	}
}
