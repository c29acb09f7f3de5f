package controllers

import (
	"net/http"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/analytics"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/httputil"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/types"
	"github.com/gin-gonic/gin"
)

// noDataMessage is returned instead of a summary when there are no
// expense records. This lets the UI distinguish "no records" from an
// average of zero.
const noDataMessage = "No data available"

// maxBucketDays bounds the daily spending window.
const maxBucketDays = 90

type SummaryResponse struct {
	Data analytics.Summary `json:"data"` // Aggregate statistics over all expenses
}

type NoDataResponse struct {
	Message string `json:"message" example:"No data available"` // Explanation why no data is returned
}

type DailyResponse struct {
	Data []analytics.Bucket `json:"data"` // Daily spending totals, oldest first
}

// DailyQuery contains the query parameters for the daily spending endpoint
type DailyQuery struct {
	Days int `form:"days"` // Size of the trailing window in days. Defaults to 7, capped at 90.
}

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsAnalyticsSummary)
	r.GET("/summary", GetAnalyticsSummary)

	r.OPTIONS("/daily", OptionsAnalyticsDaily)
	r.GET("/daily", GetAnalyticsDaily)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/summary [options]
func OptionsAnalyticsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/daily [options]
func OptionsAnalyticsDaily(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Expense summary
// @Description	Returns aggregate statistics over all expenses, or a message when there is no data
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/analytics/summary [get]
func GetAnalyticsSummary(c *gin.Context) {
	expenses, err := models.AllExpenses(models.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	summary, ok := analytics.Summarize(expenses)
	if !ok {
		c.JSON(http.StatusOK, NoDataResponse{Message: noDataMessage})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: summary})
}

// @Summary		Daily spending
// @Description	Returns the total spent per day over the trailing window, oldest first
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	DailyResponse
// @Failure		500	{object}	httputil.HTTPError
// @Param			days	query	int	false	"Size of the trailing window in days. Defaults to 7, capped at 90."
// @Router			/v1/analytics/daily [get]
func GetAnalyticsDaily(c *gin.Context) {
	var query DailyQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	days := query.Days
	if days == 0 {
		days = analytics.DefaultBucketDays
	}
	if days < 1 {
		days = 1
	}
	if days > maxBucketDays {
		days = maxBucketDays
	}

	expenses, err := models.AllExpenses(models.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, DailyResponse{
		Data: analytics.DailyBuckets(types.Today(), days, expenses),
	})
}
