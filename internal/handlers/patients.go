package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mri-dashboard/internal/middleware"
	"mri-dashboard/internal/models"
)

// --- Structs for Request Binding ---

type CreatePatientRequest struct {
	Name           string `json:"name" binding:"required"`
	DateOfBirth    string `json:"date_of_birth"` // "2006-01-02", optional
	Gender         string `json:"gender"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	MedicalHistory string `json:"medical_history"`
}

// --- Handler Functions ---

func (s *Server) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := models.Patient{
		ID:             uuid.New(),
		DoctorID:       middleware.DoctorID(c),
		Name:           req.Name,
		Gender:         optional(req.Gender),
		ContactEmail:   optional(req.ContactEmail),
		ContactPhone:   optional(req.ContactPhone),
		MedicalHistory: optional(req.MedicalHistory),
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		patient.DateOfBirth = &dob
	}

	if err := s.db.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add patient", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (s *Server) ListPatients(c *gin.Context) {
	query := s.db.Where("doctor_id = ?", middleware.DoctorID(c)).Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error fetching patients", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// optional maps an empty form value to a NULL column.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
