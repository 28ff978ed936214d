package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient defines the structure for patient records.
type Patient struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	DoctorID       uuid.UUID  `json:"doctor_id" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"index"`
	DateOfBirth    *time.Time `json:"date_of_birth"` // Optional field
	Gender         *string    `json:"gender"`        // Optional field
	ContactEmail   *string    `json:"contact_email"`
	ContactPhone   *string    `json:"contact_phone"`
	MedicalHistory *string    `json:"medical_history"`
	CreatedAt      time.Time  `json:"created_at"`
}
