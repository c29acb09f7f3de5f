package analytics

import (
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultBucketDays is the size of the trailing window the spending
// chart is plotted over.
const DefaultBucketDays = 7

// Bucket is the total amount spent on a single calendar date.
type Bucket struct {
	Date  types.Date      `json:"date" example:"2024-03-01"` // The calendar date of the bucket
	Total decimal.Decimal `json:"total" example:"32.50"`     // Sum of all amounts spent on that date
}

// DailyBuckets sums the amounts of the expenses passed in per calendar
// date over the trailing window [today-(days-1), today].
//
// The result always has exactly days entries, oldest first, with dates
// without expenses kept at zero. Expenses outside the window are
// ignored. The result only depends on the inputs, so repeated calls
// with the same record set and the same today are idempotent.
func DailyBuckets(today types.Date, days int, expenses []models.Expense) []Bucket {
	buckets := make([]Bucket, 0, days)
	index := make(map[string]int, days)

	for i := days - 1; i >= 0; i-- {
		date := today.AddDays(-i)
		index[date.String()] = len(buckets)
		buckets = append(buckets, Bucket{Date: date, Total: decimal.Zero})
	}

	for _, expense := range expenses {
		i, ok := index[expense.Date.String()]
		if !ok {
			continue
		}

		buckets[i].Total = buckets[i].Total.Add(expense.Amount)
	}

	return buckets
}
