package models

import (
	"time"
)

// Model is the base model for all other models in the Expense Tracker.
//
// Records are immutable once created, so there is no UpdatedAt and
// deletion is a hard delete.
type Model struct {
	ID        uint64    `json:"id" gorm:"primarykey" example:"4"`                // The ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
}
