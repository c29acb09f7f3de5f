package models_test

import (
	"errors"
	"testing"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testExpense(amount float64) models.Expense {
	return models.Expense{
		Amount:   decimal.NewFromFloat(amount),
		Category: models.CategoryFood,
		Date:     types.NewDate(2024, 3, 1),
	}
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := suite.createTestExpense(testExpense(14.50))

	assert.NotZero(suite.T(), expense.ID, "Expense ID must be assigned on create")
	assert.False(suite.T(), expense.CreatedAt.IsZero(), "CreatedAt must be set on create")
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"zero amount", models.Expense{Category: models.CategoryFood, Date: types.NewDate(2024, 3, 1)}, models.ErrAmountNotPositive},
		{"negative amount", models.Expense{Amount: decimal.NewFromFloat(-17.12), Category: models.CategoryFood, Date: types.NewDate(2024, 3, 1)}, models.ErrAmountNotPositive},
		{"missing category", models.Expense{Amount: decimal.NewFromFloat(1), Date: types.NewDate(2024, 3, 1)}, models.ErrCategoryInvalid},
		{"unknown category", models.Expense{Amount: decimal.NewFromFloat(1), Category: "Yachts", Date: types.NewDate(2024, 3, 1)}, models.ErrCategoryInvalid},
		{"missing date", models.Expense{Amount: decimal.NewFromFloat(1), Category: models.CategoryFood}, models.ErrDateRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			assert.True(t, errors.Is(err, tt.err), "Expected error %q, got %q", tt.err, err)

			var count int64
			models.DB.Model(&models.Expense{}).Count(&count)
			assert.Zero(t, count, "Invalid expense must not be persisted")
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesNewestFirst() {
	first := suite.createTestExpense(testExpense(1))
	second := suite.createTestExpense(testExpense(2))
	third := suite.createTestExpense(testExpense(3))

	expenses, err := models.Expenses(models.DB, models.Expense{}, 50)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), expenses, 3) {
		assert.Equal(suite.T(), third.ID, expenses[0].ID)
		assert.Equal(suite.T(), second.ID, expenses[1].ID)
		assert.Equal(suite.T(), first.ID, expenses[2].ID)
	}
}

func (suite *TestSuiteStandard) TestExpensesLimit() {
	for i := 0; i < 5; i++ {
		suite.createTestExpense(testExpense(float64(i + 1)))
	}

	expenses, err := models.Expenses(models.DB, models.Expense{}, 2)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), expenses, 2) {
		assert.True(suite.T(), expenses[0].Amount.Equal(decimal.NewFromFloat(5)), "Most recent expense must be first")
		assert.True(suite.T(), expenses[1].Amount.Equal(decimal.NewFromFloat(4)))
	}
}

func (suite *TestSuiteStandard) TestExpensesCategoryFilter() {
	suite.createTestExpense(testExpense(10))

	transport := testExpense(20)
	transport.Category = models.CategoryTransport
	suite.createTestExpense(transport)

	expenses, err := models.Expenses(models.DB, models.Expense{Category: models.CategoryTransport}, 50)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), expenses, 1) {
		assert.Equal(suite.T(), models.CategoryTransport, expenses[0].Category)
	}
}

func (suite *TestSuiteStandard) TestAllExpenses() {
	suite.createTestExpense(testExpense(10))
	suite.createTestExpense(testExpense(20))

	expenses, err := models.AllExpenses(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 2)
}

func (suite *TestSuiteStandard) TestExpenseNotFound() {
	var expense models.Expense
	err := models.DB.First(&expense, 37).Error

	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "Expected a not-found error, got %q", err)
}

func (suite *TestSuiteStandard) TestExpenseGeneralErrorOnClosedDB() {
	suite.CloseDB()

	_, err := models.AllExpenses(models.DB)
	assert.True(suite.T(), errors.Is(err, models.ErrGeneral), "Expected the general error, got %q", err)
}

func (suite *TestSuiteStandard) TestCategoryValid() {
	for _, category := range models.Categories() {
		assert.True(suite.T(), category.Valid(), "%s must be valid", category)
	}

	assert.False(suite.T(), models.Category("").Valid())
	assert.False(suite.T(), models.Category("food").Valid(), "Category matching is case sensitive")
}
