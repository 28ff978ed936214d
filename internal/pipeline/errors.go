package pipeline

import "fmt"

// Stage names the pipeline step a failure belongs to. Callers surface a
// single user-facing message per failure, keyed by stage.
type Stage string

const (
	StageValidation     Stage = "validation"
	StageAuthentication Stage = "authentication"
	StageUpload         Stage = "upload"
	StageAnalysis       Stage = "analysis"
	StagePersistence    Stage = "persistence"
)

// StageError wraps a failure with the stage it occurred in. Steps never
// retry and never roll back earlier side effects.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage an ingestion error belongs to, or "" if the
// error did not come from the pipeline.
func StageOf(err error) Stage {
	if se, ok := err.(*StageError); ok {
		return se.Stage
	}
	return ""
}
