// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httptypes "github.com/canonical/lead-service/internal/http/types"
)

// apiClient talks to a running lead-service over its JSON API
type apiClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// APIError carries a non successful response of the service
type APIError struct {
	Status   int
	Message  string
	Fields   map[string]string
	Location string
}

func (e *APIError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("api error (status %d): redirected to %s", e.Status, e.Location)
	}

	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error (status %d): %s %v", e.Status, e.Message, e.Fields)
	}

	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func newAPIClient(endpoint, token string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	c := new(apiClient)

	c.endpoint = strings.TrimSuffix(endpoint, "/")
	c.token = token
	c.client = &http.Client{
		Timeout: 30 * time.Second,
		// guards answer with redirects, surface them instead of following
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return c
}

// do sends in as JSON and decodes the "data" member of the envelope into out
func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, Location: resp.Header.Get("Location")}

		var e httptypes.ErrorResponse
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Message = e.Message
			apiErr.Fields = e.Errors
		}

		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	envelope := httptypes.Response{Data: out}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
