package controllers

import (
	"errors"
	"net/http"

	"github.com/SowdhaminiBharadwajMandavaVenkata/Expense-Tracker/internal/models"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
