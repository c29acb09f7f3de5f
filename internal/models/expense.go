package models

import (
	"time"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single logged spending entry.
type Expense struct {
	Model
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.50"`   // Amount spent, always positive
	Category Category        `json:"category" example:"Food"`                            // Category of the expense
	Date     types.Date      `json:"date" example:"2024-03-01"`                          // Calendar date the expense occurred on
	Note     string          `json:"note,omitempty" example:"Weekly groceries"`          // Optional free text
}

// Validate checks the user supplied fields of the expense.
func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	if e.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}

// BeforeCreate validates the expense so that invalid records are
// never persisted.
func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	return e.Validate()
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	return nil
}

// Expenses returns up to limit expenses matching the filter,
// newest first.
func Expenses(db *gorm.DB, filter Expense, limit int) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where(&filter).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&expenses).Error

	return expenses, err
}

// AllExpenses returns every stored expense. It is used by the
// analytics aggregation, which always works on the full record set.
func AllExpenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Order("date ASC").Find(&expenses).Error
	return expenses, err
}
