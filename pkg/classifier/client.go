// Package classifier is a thin HTTP client for the treatment
// classifier service, an external ML model that maps patient health
// features to treatment recommendations.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a classifier service client
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a new classifier client
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Recommendation is one ranked treatment from the model
type Recommendation struct {
	ID         int     `json:"id"`
	Treatment  string  `json:"treatment"`
	Confidence float64 `json:"confidence"`
	Priority   string  `json:"priority"`
}

// Prediction is the classifier's response for one feature vector
type Prediction struct {
	Recommendations  []Recommendation `json:"recommendations"`
	PrimaryTreatment string           `json:"primary_treatment"`
	Confidence       float64          `json:"confidence"`
}

// Predict sends patient health features to the model and returns its
// ranked treatment recommendations.
func (c *Client) Predict(ctx context.Context, features map[string]any) (*Prediction, error) {
	jsonData, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("encode features: %w", err)
	}

	url := fmt.Sprintf("%s/v1/predict", c.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("classifier error (%d): %s", resp.StatusCode, string(body))
	}

	var prediction Prediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}
	if prediction.PrimaryTreatment == "" {
		return nil, fmt.Errorf("classifier returned no primary treatment")
	}

	return &prediction, nil
}

// Healthy reports whether the classifier service is reachable
func (c *Client) Healthy(ctx context.Context) bool {
	url := fmt.Sprintf("%s/health", c.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
