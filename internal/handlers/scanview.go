package handlers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"mri-dashboard/internal/models"
)

// UnknownPatientLabel groups scans whose patient relation did not resolve.
const UnknownPatientLabel = "Unknown Patient"

// Badge labels for the two read-side views.
const (
	BadgeTumorDetected = "Tumor Detected"
	BadgeNoTumor       = "No Tumor"
	BadgePending       = "Pending"
)

// ScanGroup is one patient's scans in the grouped history view, most
// recent upload first.
type ScanGroup struct {
	PatientName string           `json:"patient_name"`
	Scans       []models.MRIScan `json:"scans"`
}

// DisplayName resolves the patient label for a scan row.
func DisplayName(scan models.MRIScan) string {
	if scan.Patient != nil && scan.Patient.Name != "" {
		return scan.Patient.Name
	}
	return UnknownPatientLabel
}

// GroupByPatient buckets scans by patient display name, keeping groups in
// first-appearance order and ordering each group by upload timestamp,
// descending.
func GroupByPatient(scans []models.MRIScan) []ScanGroup {
	index := map[string]int{}
	groups := []ScanGroup{}

	for _, scan := range scans {
		name := DisplayName(scan)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, ScanGroup{PatientName: name})
		}
		groups[i].Scans = append(groups[i].Scans, scan)
	}

	for i := range groups {
		group := groups[i].Scans
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].CreatedAt.After(group[b].CreatedAt)
		})
	}
	return groups
}

// FormatConfidence renders a confidence score as a percentage with two
// decimal places, or "N/A" when the scan has no score yet.
func FormatConfidence(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *score)
}

// StatusBadge is the tabular listing's per-status label. Unknown statuses
// read as Pending.
func StatusBadge(status models.AnalysisStatus) string {
	switch status {
	case models.StatusCompleted:
		return "Completed"
	case models.StatusProcessing:
		return "Processing"
	case models.StatusFailed:
		return "Failed"
	default:
		return BadgePending
	}
}

// ResolveScanItems turns stored scan rows into listing rows, signing each
// image URL independently and in parallel and joining the results before
// returning. A row whose signing fails degrades to an empty URL; the
// remaining rows are unaffected.
func ResolveScanItems(ctx context.Context, signer URLSigner, scans []models.MRIScan) []ScanListItem {
	items := make([]ScanListItem, len(scans))
	var wg sync.WaitGroup
	for i := range scans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url, err := signer.SignedURL(ctx, scans[i].ImageURL)
			if err != nil {
				log.Printf("signing URL for scan %s failed: %v", scans[i].ID, err)
				url = ""
			}
			items[i] = ScanListItem{
				MRIScan:        scans[i],
				SignedImageURL: url,
				StatusBadge:    StatusBadge(scans[i].AnalysisStatus),
				ResultBadge:    ResultBadge(scans[i]),
			}
		}(i)
	}
	wg.Wait()
	return items
}

// ResultBadge shows a detection verdict only for a completed analysis with
// a populated result; anything else, pending and processing alike, shows
// the pending indicator.
func ResultBadge(scan models.MRIScan) string {
	if scan.AnalysisStatus != models.StatusCompleted || scan.TumorDetected == nil {
		return BadgePending
	}
	if *scan.TumorDetected {
		return BadgeTumorDetected
	}
	return BadgeNoTumor
}
