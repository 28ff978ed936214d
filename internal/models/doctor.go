package models

import (
	"time"

	"github.com/google/uuid"
)

// Doctor defines the structure for doctor accounts. Doctors own patients
// and scans; ownership is the authorization boundary for every query.
type Doctor struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}
