// Package analytics aggregates the transaction ledger into category sums and
// month-bucketed income/expense series.
package analytics

import (
	"fmt"

	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// A CategorySum is the total spent in one category during a month.
type CategorySum struct {
	Category models.Category `json:"category"`
	Sum      decimal.Decimal `json:"sum"`
}

// A MonthlyTotal is the income and expense sum of a single month.
type MonthlyTotal struct {
	Month   types.Month     `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyStats is the overview of a single month.
type MonthlyStats struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Savings           decimal.Decimal `json:"savings"`
	TopCategory       models.Category `json:"topCategory,omitempty"`
	TopCategoryAmount decimal.Decimal `json:"topCategoryAmount"`
}

// MonthTransactions returns all transactions of the given calendar month,
// ordered by date.
//
// The window includes both month edges: a transaction at exactly the first or
// the last instant of the month belongs to it. The upper bound is the first
// instant of the following month, exclusive.
func (s *Service) MonthTransactions(month types.Month) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.db.
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", month, month.AddDate(0, 1)).
		Order("datetime(date) ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting transactions for %s failed: %w", month, err)
	}

	return transactions, nil
}

// CategorySums returns the expense sum per category for the given month,
// largest first. Categories without expenses in the month are omitted, they
// are not reported with a zero sum.
func (s *Service) CategorySums(month types.Month) ([]CategorySum, error) {
	var sums []CategorySum

	err := s.db.
		Table("transactions").
		Select("category, SUM(amount) AS sum").
		Where("type = ?", models.Expense).
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", month, month.AddDate(0, 1)).
		Group("category").
		Order("sum DESC").
		Find(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("getting category sums for %s failed: %w", month, err)
	}

	return sums, nil
}

// CategoryExpenses returns the expense sum of a single category for the month.
func (s *Service) CategoryExpenses(month types.Month, category models.Category) (decimal.Decimal, error) {
	return s.sum(models.Expense, month, category)
}

// TotalIncome returns the income sum for the month.
func (s *Service) TotalIncome(month types.Month) (decimal.Decimal, error) {
	return s.sum(models.Income, month, "")
}

// TotalExpenses returns the expense sum for the month.
func (s *Service) TotalExpenses(month types.Month) (decimal.Decimal, error) {
	return s.sum(models.Expense, month, "")
}

// MonthlyTotals returns exactly n consecutive months ending at end. Months
// without transactions appear with zero sums, the series is never sparse.
func (s *Service) MonthlyTotals(end types.Month, n int) ([]MonthlyTotal, error) {
	if n < 1 {
		return nil, fmt.Errorf("a monthly series needs at least one month, got %d", n)
	}

	totals := make([]MonthlyTotal, 0, n)
	for month := end.AddDate(0, -(n - 1)); !month.After(end); month = month.AddDate(0, 1) {
		income, err := s.sum(models.Income, month, "")
		if err != nil {
			return nil, err
		}

		expense, err := s.sum(models.Expense, month, "")
		if err != nil {
			return nil, err
		}

		totals = append(totals, MonthlyTotal{Month: month, Income: income, Expense: expense})
	}

	return totals, nil
}

// MonthlyStats computes the month overview: income, expenses, savings and the
// category with the highest spending.
func (s *Service) MonthlyStats(month types.Month) (MonthlyStats, error) {
	income, err := s.TotalIncome(month)
	if err != nil {
		return MonthlyStats{}, err
	}

	expenses, err := s.TotalExpenses(month)
	if err != nil {
		return MonthlyStats{}, err
	}

	stats := MonthlyStats{
		Income:   income,
		Expenses: expenses,
		Savings:  income.Sub(expenses),
	}

	sums, err := s.CategorySums(month)
	if err != nil {
		return MonthlyStats{}, err
	}

	if len(sums) > 0 {
		stats.TopCategory = sums[0].Category
		stats.TopCategoryAmount = sums[0].Sum
	}

	return stats, nil
}

// sum adds up all transactions of one type in the month. The category filter
// is skipped when category is empty.
func (s *Service) sum(typ models.TransactionType, month types.Month, category models.Category) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	query := s.db.
		Table("transactions").
		Select("SUM(amount)").
		Where("type = ?", typ).
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", month, month.AddDate(0, 1))

	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Find(&sum).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions for %s failed: %w", typ, month, err)
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
