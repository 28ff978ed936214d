package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer token handed out at login. Expired rows are
// treated as absent; nothing sweeps them.
type Session struct {
	Token     uuid.UUID `json:"token" gorm:"type:uuid;primaryKey"`
	DoctorID  uuid.UUID `json:"doctor_id" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
