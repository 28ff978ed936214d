package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisStatus is the lifecycle of a scan's tumor analysis.
type AnalysisStatus string

const (
	StatusPending    AnalysisStatus = "pending"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// MRIScan defines the structure for uploaded scan records. ImageURL holds
// the object-store key, never a public URL; readers resolve it to a
// short-lived signed URL. A completed row always carries non-nil inference
// fields; pending/failed rows carry none.
type MRIScan struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID       uuid.UUID      `json:"patient_id" gorm:"type:uuid;index"`
	DoctorID        uuid.UUID      `json:"doctor_id" gorm:"type:uuid;index"`
	ImageURL        string         `json:"image_url"`
	AnalysisStatus  AnalysisStatus `json:"analysis_status" gorm:"type:varchar(20);default:'pending';index"`
	TumorDetected   *bool          `json:"tumor_detected"`
	ConfidenceScore *float64       `json:"confidence_score"` // 0-100
	TumorType       *string        `json:"tumor_type"`
	TumorLocation   *string        `json:"tumor_location"`
	AnalysisNotes   *string        `json:"analysis_notes"`
	RawResult       datatypes.JSON `json:"-" gorm:"type:jsonb"` // verbatim inference response
	ScanDate        time.Time      `json:"scan_date"`
	CreatedAt       time.Time      `json:"created_at" gorm:"index"`

	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
}
