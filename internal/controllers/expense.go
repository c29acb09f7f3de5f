package controllers

import (
	"net/http"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/httputil"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	Amount   decimal.Decimal `json:"amount" example:"14.50"`            // Amount spent, must be positive
	Category models.Category `json:"category" example:"Food"`           // Category of the expense
	Date     types.Date      `json:"date" example:"2024-03-01"`         // Calendar date the expense occurred on
	Note     string          `json:"note" example:"Weekly groceries"`   // Optional free text
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:   editable.Amount,
		Category: editable.Category,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

// ExpenseQueryFilter contains the query parameters for the expense list
type ExpenseQueryFilter struct {
	Category string `form:"category"` // Filter by category
	Limit    int    `form:"limit"`    // Maximum number of expenses to return. Defaults to 50, capped at 200.
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"` // The expense record
}

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"` // List of expense records, newest first
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense record
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	expense := editable.model()

	err = models.DB.Create(&expense).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		List expenses
// @Description	Returns the most recent expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50, capped at 200."
// @Param			category	query	string	false	"Filter by category"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	var filterModel models.Expense
	if filter.Category != "" {
		category := models.Category(filter.Category)
		if !category.Valid() {
			httputil.NewError(c, http.StatusBadRequest, models.ErrCategoryInvalid)
			return
		}
		filterModel.Category = category
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	expenses, err := models.Expenses(models.DB, filterModel, limit)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// Always return a list, even when there are no expenses
	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Get expense
// @Description	Returns a specific expense record
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense record
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
