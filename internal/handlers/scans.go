package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mri-dashboard/internal/middleware"
	"mri-dashboard/internal/models"
	"mri-dashboard/internal/pipeline"
)

// GormScanRecorder persists scan rows for the ingestion pipeline.
type GormScanRecorder struct {
	DB *gorm.DB
}

func (r *GormScanRecorder) CreateScan(ctx context.Context, scan *models.MRIScan) error {
	return r.DB.WithContext(ctx).Create(scan).Error
}

// ScanListItem is one row of the tabular listing: the stored row plus a
// freshly signed image URL and its view labels.
type ScanListItem struct {
	models.MRIScan
	SignedImageURL string `json:"signed_image_url"`
	StatusBadge    string `json:"status_badge"`
	ResultBadge    string `json:"result_badge"`
}

// UploadScan runs the ingestion pipeline for one multipart upload.
func (s *Server) UploadScan(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a patient and upload a file", "stage": string(pipeline.StageValidation)})
		return
	}
	defer file.Close()

	patientIDRaw := c.PostForm("patient_id")
	if patientIDRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a patient and upload a file", "stage": string(pipeline.StageValidation)})
		return
	}
	patientID, err := uuid.Parse(patientIDRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id", "stage": string(pipeline.StageValidation)})
		return
	}

	doctorID := middleware.DoctorID(c)

	// Ownership check before any side effects.
	var patient models.Patient
	if err := s.db.Where("id = ? AND doctor_id = ?", patientID, doctorID).First(&patient).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error fetching patient", "details": err.Error()})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	var scanDate time.Time
	if raw := c.PostForm("scan_date"); raw != "" {
		scanDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scan_date must be YYYY-MM-DD", "stage": string(pipeline.StageValidation)})
			return
		}
	}

	scan, err := s.pipeline.Ingest(c.Request.Context(), pipeline.IngestRequest{
		DoctorID:  doctorID,
		PatientID: patientID,
		Filename:  header.Filename,
		Data:      data,
		ScanDate:  scanDate,
	})
	if err != nil {
		status, msg := ingestFailure(err)
		c.JSON(status, gin.H{"error": msg, "stage": string(pipeline.StageOf(err))})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "MRI scan uploaded and analyzed successfully", "scan": scan})
}

// ingestFailure maps a pipeline stage error to a status code and a single
// user-facing message naming the failing stage.
func ingestFailure(err error) (int, string) {
	switch pipeline.StageOf(err) {
	case pipeline.StageValidation:
		return http.StatusBadRequest, "Please select a patient and upload a file"
	case pipeline.StageAuthentication:
		return http.StatusUnauthorized, "Not authenticated"
	case pipeline.StageUpload:
		return http.StatusBadGateway, "Failed to store scan image"
	case pipeline.StageAnalysis:
		return http.StatusBadGateway, "Failed to analyze scan"
	case pipeline.StagePersistence:
		return http.StatusInternalServerError, "Failed to save scan results"
	default:
		return http.StatusInternalServerError, "Failed to upload and analyze scan"
	}
}

// ListScans returns the tabular scan history, most recent upload first,
// each row carrying a signed image URL. URL signing runs per row,
// concurrently; a row whose signing fails degrades to an empty URL and
// never aborts the listing.
func (s *Server) ListScans(c *gin.Context) {
	var scans []models.MRIScan
	err := s.db.Preload("Patient").
		Where("doctor_id = ?", middleware.DoctorID(c)).
		Order("created_at DESC").
		Find(&scans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error fetching scans", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ResolveScanItems(c.Request.Context(), s.signer, scans))
}

// RecentScans returns the grouped history view: scans bucketed by patient
// display name, unresolvable relations under "Unknown Patient", each group
// newest first.
func (s *Server) RecentScans(c *gin.Context) {
	var scans []models.MRIScan
	err := s.db.Preload("Patient").
		Where("doctor_id = ?", middleware.DoctorID(c)).
		Order("created_at DESC").
		Find(&scans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error fetching scans", "details": err.Error()})
		return
	}

	groups := GroupByPatient(scans)

	type groupedScan struct {
		ID          uuid.UUID `json:"id"`
		CreatedAt   time.Time `json:"created_at"`
		ScanDate    time.Time `json:"scan_date"`
		ResultBadge string    `json:"result_badge"`
		TumorType   string    `json:"tumor_type"`
		Confidence  string    `json:"confidence"`
		StatusBadge string    `json:"status_badge"`
	}
	type groupOut struct {
		PatientName string        `json:"patient_name"`
		Scans       []groupedScan `json:"scans"`
	}

	out := make([]groupOut, 0, len(groups))
	for _, g := range groups {
		rows := make([]groupedScan, 0, len(g.Scans))
		for _, scan := range g.Scans {
			tumorType := "N/A"
			if scan.TumorType != nil {
				tumorType = *scan.TumorType
			}
			rows = append(rows, groupedScan{
				ID:          scan.ID,
				CreatedAt:   scan.CreatedAt,
				ScanDate:    scan.ScanDate,
				ResultBadge: ResultBadge(scan),
				TumorType:   tumorType,
				Confidence:  FormatConfidence(scan.ConfidenceScore),
				StatusBadge: StatusBadge(scan.AnalysisStatus),
			})
		}
		out = append(out, groupOut{PatientName: g.PatientName, Scans: rows})
	}

	c.JSON(http.StatusOK, out)
}
