// Package models contains the database models and the database
// connection for the paisaflow backend.
package models

import (
	"time"
)

// Model is the base model for all other models.
type Model struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
