package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/controllers"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExpense(t *testing.T, editable controllers.ExpenseEditable, expectedStatus ...int) controllers.ExpenseResponse {
	if editable.Category == "" {
		editable.Category = models.CategoryFood
	}

	if editable.Date.IsZero() {
		editable.Date = types.NewDate(2024, 3, 1)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response controllers.ExpenseResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &response)
	}

	return response
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	response := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(14.50),
		Category: models.CategoryFood,
		Date:     types.NewDate(2024, 3, 1),
		Note:     "Weekly groceries",
	})

	expense := response.Data
	assert.NotZero(suite.T(), expense.ID, "ID must be assigned by the server")
	assert.Equal(suite.T(), "Weekly groceries", expense.Note)
	assert.True(suite.T(), expense.Amount.Equal(decimal.NewFromFloat(14.50)))

	// The created record is returned by the list endpoint
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), expense.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestExpenseCreateIDsUnique() {
	seen := make(map[uint64]bool)

	for i := 0; i < 3; i++ {
		response := createTestExpense(suite.T(), controllers.ExpenseEditable{
			Amount: decimal.NewFromFloat(float64(i + 1)),
		})

		assert.False(suite.T(), seen[response.Data.ID], "ID %d was assigned twice", response.Data.ID)
		seen[response.Data.ID] = true
	}
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"broken JSON", `{ "amount": 14.50`},
		{"non-numeric amount", `{ "amount": "a lot", "category": "Food", "date": "2024-03-01" }`},
		{"zero amount", `{ "amount": 0, "category": "Food", "date": "2024-03-01" }`},
		{"negative amount", `{ "amount": -17.12, "category": "Food", "date": "2024-03-01" }`},
		{"missing category", `{ "amount": 14.50, "date": "2024-03-01" }`},
		{"unknown category", `{ "amount": 14.50, "category": "Yachts", "date": "2024-03-01" }`},
		{"missing date", `{ "amount": 14.50, "category": "Food" }`},
		{"invalid date", `{ "amount": 14.50, "category": "Food", "date": "soon" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	// None of the invalid requests may have persisted a record
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	for i := 1; i <= 5; i++ {
		createTestExpense(suite.T(), controllers.ExpenseEditable{
			Amount: decimal.NewFromFloat(float64(i)),
		})
	}

	tests := []struct {
		name     string
		url      string
		expected int
	}{
		{"default limit", "http://example.com/v1/expenses", 5},
		{"limit=2", "http://example.com/v1/expenses?limit=2", 2},
		{"limit above record count", "http://example.com/v1/expenses?limit=200", 5},
		{"negative limit", "http://example.com/v1/expenses?limit=-17", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var list controllers.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &list)
			assert.Len(t, list.Data, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListNewestFirst() {
	for i := 1; i <= 5; i++ {
		createTestExpense(suite.T(), controllers.ExpenseEditable{
			Amount: decimal.NewFromFloat(float64(i)),
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	require.Len(suite.T(), list.Data, 2)
	assert.True(suite.T(), list.Data[0].Amount.Equal(decimal.NewFromFloat(5)), "Most recently created expense must be first, got amount %s", list.Data[0].Amount)
	assert.True(suite.T(), list.Data[1].Amount.Equal(decimal.NewFromFloat(4)))
}

func (suite *TestSuiteStandard) TestExpensesListCategoryFilter() {
	createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimal.NewFromFloat(10), Category: models.CategoryFood})
	createTestExpense(suite.T(), controllers.ExpenseEditable{Amount: decimal.NewFromFloat(20), Category: models.CategoryRent})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=Rent", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), models.CategoryRent, list.Data[0].Category)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?category=Yachts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesListEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The data field must be an empty list, not null
	assert.Contains(suite.T(), recorder.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	created := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(14.50),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/37", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/not-a-number", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	created := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(14.50),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The deleted record must no longer appear in the list
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	for _, expense := range list.Data {
		assert.NotEqual(suite.T(), created.Data.ID, expense.ID, "Deleted expense is still returned")
	}
}

func (suite *TestSuiteStandard) TestExpenseDeleteNotFound() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expenses/37", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, controllers.ExpenseEditable{Amount: decimal.NewFromFloat(17.12)}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	tests := []struct {
		name  string
		url   string
		allow string
	}{
		{"list", "http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"detail", "http://example.com/v1/expenses/1", "OPTIONS, GET, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}
