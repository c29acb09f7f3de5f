package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for expenses
var (
	ErrAmountNotPositive = errors.New("the expense amount must be positive")
	ErrCategoryInvalid   = errors.New("the expense category must be one of: Food, Transport, Shopping, Rent, Utilities, Other")
	ErrDateRequired      = errors.New("the expense date must be set")
)
