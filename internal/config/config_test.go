package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ListenPort)
	assert.Equal(t, "mri-scans", cfg.ScanBucket)
	assert.Equal(t, 10*time.Minute, cfg.SignedURLTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionMaxAge)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LISTEN_PORT", "9000")
	t.Setenv("S3_BUCKET", "scans-staging")
	t.Setenv("SIGNED_URL_TTL_MINUTES", "5")
	t.Setenv("INFERENCE_URL", "http://inference.internal:8000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ListenPort)
	assert.Equal(t, "scans-staging", cfg.ScanBucket)
	assert.Equal(t, 5*time.Minute, cfg.SignedURLTTL)
	assert.Equal(t, "http://inference.internal:8000", cfg.InferenceURL)
}

func TestLoadConfigBadTTLFallsBack(t *testing.T) {
	t.Setenv("SIGNED_URL_TTL_MINUTES", "not-a-number")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.SignedURLTTL)
}
