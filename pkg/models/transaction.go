package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Category is one of the fixed spending categories. The set is closed, any
// other value is rejected before it reaches the database.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryRent          Category = "Rent"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategoryGroceries     Category = "Groceries"
	CategoryOther         Category = "Other"
)

// Categories lists all supported categories.
var Categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryRent,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryEntertainment,
	CategoryGroceries,
	CategoryOther,
}

// Valid reports whether the category is one of the supported categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// NoteMaxLength is the maximum length of a transaction note in characters.
const NoteMaxLength = 120

var (
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be income or expense")
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrCategoryInvalid              = errors.New("the category is not one of the supported categories")
	ErrNoteTooLong                  = errors.New("transaction notes must be 120 characters or shorter")
)

// Transaction represents a single income or expense entry in the ledger.
//
// Transactions are immutable once created, the engines only ever read them.
type Transaction struct {
	DefaultModel
	Type     TransactionType `json:"type" gorm:"index"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Category Category        `json:"category" gorm:"index"`
	Date     time.Time       `json:"date" gorm:"index"`
	Note     string          `json:"note,omitempty"`
}

// BeforeSave validates the transaction and normalises its date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Type != Income && t.Type != Expense {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if !t.Category.Valid() {
		return ErrCategoryInvalid
	}

	t.Note = strings.TrimSpace(t.Note)
	if utf8.RuneCountInString(t.Note) > NoteMaxLength {
		return ErrNoteTooLong
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind normalises the date to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}
