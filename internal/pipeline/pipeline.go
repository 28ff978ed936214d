package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"mri-dashboard/internal/inference"
	"mri-dashboard/internal/models"
	"mri-dashboard/internal/storage"
)

// ObjectStore is the slice of the object-store surface the pipeline needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
}

// Analyzer is the remote tumor-classification call.
type Analyzer interface {
	Analyze(ctx context.Context, filename string, data []byte, patientID, doctorID string) (*inference.Result, error)
}

// ScanRecorder persists one scan row.
type ScanRecorder interface {
	CreateScan(ctx context.Context, scan *models.MRIScan) error
}

// IngestRequest carries one locally selected file plus its target patient.
type IngestRequest struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Filename  string
	Data      []byte
	ScanDate  time.Time
}

// Pipeline drives a scan through upload, remote analysis, and result
// persistence. Steps run strictly in order, each gating the next; a
// failure aborts without retrying and without rolling back earlier steps,
// so an object uploaded before a later failure stays behind (logged, not
// cleaned up).
type Pipeline struct {
	Store    ObjectStore
	Analyzer Analyzer
	Scans    ScanRecorder
}

func New(store ObjectStore, analyzer Analyzer, scans ScanRecorder) *Pipeline {
	return &Pipeline{Store: store, Analyzer: analyzer, Scans: scans}
}

// Ingest runs the four-step ingestion. On success exactly one completed
// scan row exists with every inference field populated.
func (p *Pipeline) Ingest(ctx context.Context, req IngestRequest) (*models.MRIScan, error) {
	if len(req.Data) == 0 || req.Filename == "" {
		return nil, &StageError{Stage: StageValidation, Err: fmt.Errorf("no file selected")}
	}
	if req.PatientID == uuid.Nil {
		return nil, &StageError{Stage: StageValidation, Err: fmt.Errorf("no patient selected")}
	}
	if req.DoctorID == uuid.Nil {
		return nil, &StageError{Stage: StageAuthentication, Err: fmt.Errorf("no operator identity")}
	}

	key := storage.BuildKey(req.DoctorID.String(), req.Filename, time.Now())
	if err := p.Store.Put(ctx, key, req.Data); err != nil {
		return nil, &StageError{Stage: StageUpload, Err: err}
	}

	result, err := p.Analyzer.Analyze(ctx, req.Filename, req.Data, req.PatientID.String(), req.DoctorID.String())
	if err != nil {
		log.Printf("analysis failed, object %s left orphaned: %v", key, err)
		return nil, &StageError{Stage: StageAnalysis, Err: err}
	}

	scanDate := req.ScanDate
	if scanDate.IsZero() {
		scanDate = time.Now()
	}

	scan := &models.MRIScan{
		ID:              uuid.New(),
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		ImageURL:        key,
		AnalysisStatus:  models.StatusCompleted,
		TumorDetected:   &result.TumorDetected,
		ConfidenceScore: &result.ConfidenceScore,
		TumorType:       result.TumorType,
		TumorLocation:   result.TumorLocation,
		AnalysisNotes:   &result.AnalysisNotes,
		RawResult:       datatypes.JSON(result.Raw),
		ScanDate:        scanDate,
	}

	if err := p.Scans.CreateScan(ctx, scan); err != nil {
		log.Printf("persistence failed, object %s left orphaned: %v", key, err)
		return nil, &StageError{Stage: StagePersistence, Err: err}
	}

	return scan, nil
}
