package inference

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSuccess(t *testing.T) {
	var gotPatient, gotDoctor, gotFilename string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		gotPatient = r.FormValue("patient_id")
		gotDoctor = r.FormValue("doctor_id")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tumor_detected":true,"confidence_score":91.2,"tumor_type":"Glioblastoma","tumor_location":"Frontal Lobe","analysis_notes":"Clinical correlation advised."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Analyze(context.Background(), "brain1.png", []byte("image-bytes"), "P1", "D1")
	require.NoError(t, err)

	assert.Equal(t, "P1", gotPatient)
	assert.Equal(t, "D1", gotDoctor)
	assert.Equal(t, "brain1.png", gotFilename)
	assert.Equal(t, []byte("image-bytes"), gotFile)

	assert.True(t, result.TumorDetected)
	assert.Equal(t, 91.2, result.ConfidenceScore)
	require.NotNil(t, result.TumorType)
	assert.Equal(t, "Glioblastoma", *result.TumorType)
	require.NotNil(t, result.TumorLocation)
	assert.Equal(t, "Frontal Lobe", *result.TumorLocation)
	assert.Equal(t, "Clinical correlation advised.", result.AnalysisNotes)
	assert.NotEmpty(t, result.Raw)
}

func TestAnalyzeNoTumorNullFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tumor_detected":false,"confidence_score":97.4,"tumor_type":null,"tumor_location":null,"analysis_notes":"No tumor detected."}`))
	}))
	defer srv.Close()

	result, err := NewClient(srv.URL).Analyze(context.Background(), "brain2.png", []byte("x"), "P1", "D1")
	require.NoError(t, err)
	assert.False(t, result.TumorDetected)
	assert.Nil(t, result.TumorType)
	assert.Nil(t, result.TumorLocation)
}

func TestAnalyzeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), "brain1.png", []byte("x"), "P1", "D1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAnalyzeMissingTumorDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"confidence_score":50.0}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), "brain1.png", []byte("x"), "P1", "D1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tumor_detected")
}

func TestAnalyzeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), "brain1.png", []byte("x"), "P1", "D1")
	require.Error(t, err)
}

func TestAnalyzeEndpointUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), "brain1.png", []byte("x"), "P1", "D1")
	require.Error(t, err)
}
