package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

func TestDetectionRate(t *testing.T) {
	assert.Equal(t, 0.0, DetectionRate(0, 0))
	assert.Equal(t, 0.0, DetectionRate(0, 10))
	assert.Equal(t, 50.0, DetectionRate(5, 10))
	assert.Equal(t, 33.3, DetectionRate(1, 3))
	assert.Equal(t, 100.0, DetectionRate(10, 10))
}

func TestAverageConfidence(t *testing.T) {
	assert.Equal(t, 0.0, AverageConfidence(nil))
	assert.Equal(t, 0.0, AverageConfidence([]*float64{nil, nil}))
	assert.Equal(t, 90.0, AverageConfidence([]*float64{fptr(80), fptr(100)}))
	// Pending scans contribute nothing to the average.
	assert.Equal(t, 91.2, AverageConfidence([]*float64{fptr(91.2), nil}))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}
