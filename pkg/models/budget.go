package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStatus describes how close the spending in a category is to its limit.
type BudgetStatus string

const (
	BudgetStatusSafe     BudgetStatus = "safe"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

var (
	ErrBudgetExists           = errors.New("a budget for this category already exists")
	ErrBudgetLimitNotPositive = errors.New("budget limits must be larger than zero")
)

// Budget is a monthly spending limit for a single category.
//
// MonthlyLimit is the only authoritative value. Spent, Remaining, Percentage
// and Status are materialized from the ledger for the current calendar month
// and are only ever written by the budget engine's refresh.
type Budget struct {
	DefaultModel
	Category     Category        `json:"category" gorm:"uniqueIndex"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" gorm:"type:DECIMAL(20,8)"`
	Spent        decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)"`
	Remaining    decimal.Decimal `json:"remaining" gorm:"type:DECIMAL(20,8)"`
	Percentage   decimal.Decimal `json:"percentage" gorm:"type:DECIMAL(20,8)"`
	Status       BudgetStatus    `json:"status"`
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.Category.Valid() {
		return ErrCategoryInvalid
	}

	if !b.MonthlyLimit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	return nil
}
