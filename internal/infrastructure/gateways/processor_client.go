package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"motor-kita.backend/internal/domain/entities"
	"motor-kita.backend/internal/domain/repositories"
)

// ProcessorClient submits applications to the downstream onboarding
// processor over HTTP. It implements repositories.SubmissionGateway.
type ProcessorClient struct {
	baseURL string
	http    *http.Client
}

// NewProcessorClient creates a new processor client
func NewProcessorClient(baseURL string, timeout time.Duration) *ProcessorClient {
	return &ProcessorClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit posts the payload to the processor. A non-2xx status or transport
// failure is returned as an error; the caller converts it to a result value.
func (c *ProcessorClient) Submit(ctx context.Context, payload repositories.SubmissionPayload) (*entities.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/onboarding/applications", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result entities.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("processor returned unreadable response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Message != "" {
			return nil, fmt.Errorf("processor rejected submission: %s", result.Message)
		}
		return nil, fmt.Errorf("processor returned status %d", resp.StatusCode)
	}
	return &result, nil
}
