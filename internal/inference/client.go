package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Result is the tumor classification returned by the inference service.
// It is transient: the pipeline folds it into the scan row and never
// stores it independently.
type Result struct {
	TumorDetected   bool    `json:"tumor_detected"`
	ConfidenceScore float64 `json:"confidence_score"`
	TumorType       *string `json:"tumor_type"`
	TumorLocation   *string `json:"tumor_location"`
	AnalysisNotes   string  `json:"analysis_notes"`

	// Raw is the verbatim response body, kept for the jsonb audit column.
	Raw json.RawMessage `json:"-"`
}

// resultWire mirrors Result with a pointer tumor_detected so an absent
// field is distinguishable from false and can be rejected at the boundary.
type resultWire struct {
	TumorDetected   *bool   `json:"tumor_detected"`
	ConfidenceScore float64 `json:"confidence_score"`
	TumorType       *string `json:"tumor_type"`
	TumorLocation   *string `json:"tumor_location"`
	AnalysisNotes   string  `json:"analysis_notes"`
}

// Client calls the external tumor-classification endpoint. The endpoint is
// an opaque black box: one multipart POST, no auth scheme, no retries.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Analyze submits the scan image plus patient/doctor identifiers to
// POST /predict and returns the classification. Any transport failure,
// non-2xx status, or response missing tumor_detected is an error.
func (c *Client) Analyze(ctx context.Context, filename string, data []byte, patientID, doctorID string) (*Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.WriteField("patient_id", patientID); err != nil {
		return nil, err
	}
	if err := writer.WriteField("doctor_id", doctorID); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var wire resultWire
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	if wire.TumorDetected == nil {
		return nil, fmt.Errorf("inference response missing tumor_detected")
	}

	return &Result{
		TumorDetected:   *wire.TumorDetected,
		ConfidenceScore: wire.ConfidenceScore,
		TumorType:       wire.TumorType,
		TumorLocation:   wire.TumorLocation,
		AnalysisNotes:   wire.AnalysisNotes,
		Raw:             json.RawMessage(respBody),
	}, nil
}
