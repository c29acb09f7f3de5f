package models

import (
	"golang.org/x/exp/slices"
)

// Category classifies what an expense was spent on.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryShopping  Category = "Shopping"
	CategoryRent      Category = "Rent"
	CategoryUtilities Category = "Utilities"
	CategoryOther     Category = "Other"
)

// Categories returns all valid expense categories.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryRent,
		CategoryUtilities,
		CategoryOther,
	}
}

// Valid reports whether the category is a member of the fixed category set.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}
