// Package estimator wraps the external delivery-time collaborator. Failures
// here are always recovered by the caller's deterministic fallback; no error
// from this package reaches an API response.
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Input describes one estimation request. Locations are free-form strings,
// either addresses or "lat,lng" pairs.
type Input struct {
	CustomerLocation string  `json:"customer_location"`
	ShopLocation     string  `json:"shop_location"`
	OrderTotal       float64 `json:"order_total"`
	TimeOfDay        string  `json:"time_of_day"`
}

type Output struct {
	EstimatedTime string  `json:"estimated_time"`
	Confidence    float64 `json:"confidence"`
}

type Client interface {
	Estimate(ctx context.Context, input Input) (Output, error)
}

// HTTPClient posts estimation requests to a remote estimator endpoint.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Estimate(ctx context.Context, input Input) (Output, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return Output{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/estimate", bytes.NewReader(body))
	if err != nil {
		return Output{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Output{}, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("estimator returned status %d", resp.StatusCode)
	}

	var out Output
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Output{}, fmt.Errorf("decode estimator response -> %w", err)
	}

	return out, nil
}

// Stub is a deterministic stand-in for the remote estimator, used when no
// endpoint is configured in development.
type Stub struct{}

func (Stub) Estimate(ctx context.Context, input Input) (Output, error) {
	// Larger orders get the slower window, mimicking the prioritisation
	// hint the remote service documents.
	estimate := "25-35 minutes"
	if input.OrderTotal >= 1000 {
		estimate = "35-45 minutes"
	}

	return Output{
		EstimatedTime: estimate,
		Confidence:    0.4,
	}, nil
}
