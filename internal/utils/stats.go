package utils

import (
	"math"
)

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// DetectionRate returns the share of scans with a detected tumor as a
// percentage rounded to one decimal place. The denominator is clamped to 1
// so an empty history reads as 0 rather than NaN.
func DetectionRate(tumorsDetected, totalScans int) float64 {
	if totalScans < 1 {
		totalScans = 1
	}
	return RoundFloat(float64(tumorsDetected)/float64(totalScans)*100, 1)
}

// AverageConfidence calculates the mean of the confidence scores.
// Nil values in the input slice are ignored. Returns 0 when no scan has
// a score yet.
func AverageConfidence(scores []*float64) float64 {
	filtered := []float64{}
	for _, score := range scores {
		if score != nil {
			filtered = append(filtered, *score)
		}
	}

	n := len(filtered)
	if n == 0 {
		return 0.0
	}

	sum := 0.0
	for _, val := range filtered {
		sum += val
	}
	return RoundFloat(sum/float64(n), 1)
}
