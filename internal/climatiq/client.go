package climatiq

import (
	"bytes"
	"carbontrack/internal/emissions"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production Climatiq endpoint.
const DefaultBaseURL = "https://api.climatiq.io"

const defaultTimeout = 10 * time.Second

// Client calls the Climatiq estimate API over authenticated HTTPS.
// It implements emissions.Provider and makes a single attempt per call;
// retry policy belongs to the caller (the estimator falls back instead).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Climatiq client. An empty baseURL selects the
// production endpoint, a zero timeout selects the default bound.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type estimateRequest struct {
	EmissionFactor struct {
		ID string `json:"id"`
	} `json:"emission_factor"`
	Parameters emissions.Parameters `json:"parameters"`
}

// co2e is decoded as a pointer so a missing field is distinguishable
// from an explicit zero.
type estimateResponse struct {
	Co2e *float64 `json:"co2e"`
}

// Estimate posts one estimation request for the given factor id. A
// response without a co2e field is an error so the estimator can fall
// back; an explicit zero is returned as a valid result.
func (c *Client) Estimate(ctx context.Context, factorID string, params emissions.Parameters) (float64, error) {
	body := estimateRequest{Parameters: params}
	body.EmissionFactor.ID = factorID

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode estimate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/estimate", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build estimate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("estimate call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("estimate call returned status %d: %s", resp.StatusCode, detail)
	}

	var out estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode estimate response: %w", err)
	}
	if out.Co2e == nil {
		return 0, errors.New("estimate response missing co2e")
	}
	return *out.Co2e, nil
}
