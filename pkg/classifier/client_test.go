package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var features map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&features))
		assert.Equal(t, float64(72), features["health_score"])

		json.NewEncoder(w).Encode(Prediction{
			Recommendations: []Recommendation{
				{ID: 1, Treatment: "Lifestyle Modification Program", Confidence: 0.85, Priority: "high"},
				{ID: 2, Treatment: "Preventive Care Plan", Confidence: 0.65, Priority: "medium"},
			},
			PrimaryTreatment: "Lifestyle Modification Program",
			Confidence:       0.85,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	prediction, err := client.Predict(context.Background(), map[string]any{"health_score": 72})
	require.NoError(t, err)

	assert.Equal(t, "Lifestyle Modification Program", prediction.PrimaryTreatment)
	assert.Equal(t, 0.85, prediction.Confidence)
	require.Len(t, prediction.Recommendations, 2)
	assert.Equal(t, "high", prediction.Recommendations[0].Priority)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), map[string]any{"health_score": 72})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestPredictEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), map[string]any{"health_score": 72})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no primary treatment")
}

func TestPredictContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(ctx, map[string]any{"health_score": 72})
	require.Error(t, err)
}

func TestHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	assert.True(t, client.Healthy(context.Background()))

	client.URL = "http://127.0.0.1:1"
	assert.False(t, client.Healthy(context.Background()))
}
