// Package analytics computes aggregate statistics over the stored
// expenses. All computation happens on records fetched per request,
// nothing in this package holds state.
package analytics

import (
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Summary contains the aggregate statistics for a set of expenses.
type Summary struct {
	TotalExpenses  int                                 `json:"totalExpenses" example:"41"`  // Number of expense records
	AverageSpend   decimal.Decimal                     `json:"averageSpend" example:"13.37"` // Mean amount, rounded to 2 decimal places
	MaxSpend       decimal.Decimal                     `json:"maxSpend" example:"320.00"`    // Largest single amount
	CategoryTotals map[models.Category]decimal.Decimal `json:"categoryTotals"`               // Sum of amounts per category
	MonthlyTotals  map[string]decimal.Decimal          `json:"monthlyTotals"`                // Sum of amounts per month (YYYY-MM)
}

// Summarize computes the Summary for the expenses passed in.
//
// The second return value reports whether there was any data to
// summarize. For an empty record set it is false and the Summary is the
// zero value, so that callers can distinguish "no records" from an
// average of zero.
func Summarize(expenses []models.Expense) (Summary, bool) {
	if len(expenses) == 0 {
		return Summary{}, false
	}

	sum := decimal.Zero
	max := decimal.Zero
	categoryTotals := make(map[models.Category]decimal.Decimal)
	monthlyTotals := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)

		if expense.Amount.GreaterThan(max) {
			max = expense.Amount
		}

		categoryTotals[expense.Category] = categoryTotals[expense.Category].Add(expense.Amount)

		month := expense.Date.Month()
		monthlyTotals[month] = monthlyTotals[month].Add(expense.Amount)
	}

	return Summary{
		TotalExpenses:  len(expenses),
		AverageSpend:   sum.DivRound(decimal.NewFromInt(int64(len(expenses))), 2),
		MaxSpend:       max.Round(2),
		CategoryTotals: categoryTotals,
		MonthlyTotals:  monthlyTotals,
	}, true
}
