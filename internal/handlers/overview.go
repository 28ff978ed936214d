package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mri-dashboard/internal/middleware"
	"mri-dashboard/internal/models"
	"mri-dashboard/internal/utils"
)

// Overview returns the dashboard headline stats for the current doctor.
func (s *Server) Overview(c *gin.Context) {
	doctorID := middleware.DoctorID(c)

	var totalPatients int64
	if err := s.db.Model(&models.Patient{}).Where("doctor_id = ?", doctorID).Count(&totalPatients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting patients", "details": err.Error()})
		return
	}

	var totalScans int64
	if err := s.db.Model(&models.MRIScan{}).Where("doctor_id = ?", doctorID).Count(&totalScans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting scans", "details": err.Error()})
		return
	}

	var tumorsDetected int64
	if err := s.db.Model(&models.MRIScan{}).
		Where("doctor_id = ? AND tumor_detected = ?", doctorID, true).
		Count(&tumorsDetected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting detections", "details": err.Error()})
		return
	}

	var pendingAnalysis int64
	if err := s.db.Model(&models.MRIScan{}).
		Where("doctor_id = ? AND analysis_status IN ?", doctorID, []models.AnalysisStatus{models.StatusPending, models.StatusProcessing}).
		Count(&pendingAnalysis).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting pending scans", "details": err.Error()})
		return
	}

	var scores []*float64
	if err := s.db.Model(&models.MRIScan{}).
		Where("doctor_id = ?", doctorID).
		Pluck("confidence_score", &scores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching confidence scores", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_patients":     totalPatients,
		"total_scans":        totalScans,
		"tumors_detected":    tumorsDetected,
		"pending_analysis":   pendingAnalysis,
		"detection_rate":     utils.DetectionRate(int(tumorsDetected), int(totalScans)),
		"average_confidence": utils.AverageConfidence(scores),
	})
}
