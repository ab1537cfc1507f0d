// Package budgets manages per-category monthly spending limits and the
// derived spent/remaining/percentage/status fields.
package budgets

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/paisapal/backend/pkg/analytics"
	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	warningPercentage  = decimal.NewFromInt(80)
	exceededPercentage = decimal.NewFromInt(100)
	oneHundred         = decimal.NewFromInt(100)
)

// Service manages budgets on top of the ledger.
type Service struct {
	db        *gorm.DB
	analytics *analytics.Service
}

// New returns a budget service operating on the given database handle.
func New(db *gorm.DB) *Service {
	return &Service{
		db:        db,
		analytics: analytics.New(db),
	}
}

// Create adds a budget for a category.
//
// Only one budget may exist per category, a second create returns
// models.ErrBudgetExists. The limit must be strictly positive. The derived
// fields start at zero spending.
func (s *Service) Create(category models.Category, monthlyLimit decimal.Decimal) (models.Budget, error) {
	budget := models.Budget{
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Spent:        decimal.Zero,
		Remaining:    monthlyLimit,
		Percentage:   decimal.Zero,
		Status:       models.BudgetStatusSafe,
	}

	err := s.db.Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Update changes the monthly limit of an existing budget.
//
// The derived fields are recomputed from the budget's current Spent value,
// which may be stale until the next RefreshSpending call. Remaining is not
// clamped here, the display form is only produced by the refresh.
func (s *Service) Update(id uuid.UUID, monthlyLimit decimal.Decimal) (models.Budget, error) {
	var budget models.Budget

	err := s.db.First(&budget, "id = ?", id).Error
	if err != nil {
		return models.Budget{}, err
	}

	budget.MonthlyLimit = monthlyLimit
	budget.Remaining = monthlyLimit.Sub(budget.Spent)
	budget.Percentage = Percentage(budget.Spent, monthlyLimit)
	budget.Status = StatusFor(budget.Spent, monthlyLimit)

	err = s.db.Save(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Delete removes a budget. Deleting a budget that does not exist is not an
// error, the call is idempotent.
func (s *Service) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.Budget{}, "id = ?", id).Error
}

// All returns all budgets.
func (s *Service) All() ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budgets failed: %w", err)
	}

	return budgets, nil
}

// Progress returns the budget for a category.
func (s *Service) Progress(category models.Category) (models.Budget, error) {
	var budget models.Budget

	err := s.db.First(&budget, "category = ?", category).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// RefreshSpending recomputes the derived fields of every budget from the
// ledger for the given month.
//
// Spent is not maintained incrementally on transaction insert, so this must
// run before budgets are displayed. Running it twice without new transactions
// yields identical derived fields.
func (s *Service) RefreshSpending(month types.Month) error {
	budgets, err := s.All()
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		spent, err := s.analytics.CategoryExpenses(month, budget.Category)
		if err != nil {
			return err
		}

		remaining := budget.MonthlyLimit.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		budget.Spent = spent
		budget.Remaining = remaining
		budget.Percentage = Percentage(spent, budget.MonthlyLimit)
		budget.Status = StatusFor(spent, budget.MonthlyLimit)

		err = s.db.Save(&budget).Error
		if err != nil {
			return fmt.Errorf("refreshing budget for %s failed: %w", budget.Category, err)
		}
	}

	return nil
}

// Alerts returns all budgets whose status is warning or exceeded.
func (s *Service) Alerts() ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.
		Where("status IN ?", []models.BudgetStatus{models.BudgetStatusWarning, models.BudgetStatusExceeded}).
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budget alerts failed: %w", err)
	}

	return budgets, nil
}

// Percentage returns how much of the limit is spent, in percent.
// A limit of zero yields zero, never a division error.
func Percentage(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}

	return spent.Div(limit).Mul(oneHundred)
}

// StatusFor derives the budget status from spending and limit:
// exceeded at 100%, warning at 80%, safe below.
func StatusFor(spent, limit decimal.Decimal) models.BudgetStatus {
	percentage := Percentage(spent, limit)

	switch {
	case percentage.GreaterThanOrEqual(exceededPercentage):
		return models.BudgetStatusExceeded
	case percentage.GreaterThanOrEqual(warningPercentage):
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusSafe
	}
}
