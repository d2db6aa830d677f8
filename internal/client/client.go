// Package client talks to the contact intake endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pooja2309/portfolio/internal/contact"
)

const contactPath = "/api/contact"

// ValidationError is returned when the server rejects the payload.
type ValidationError struct {
	Fields contact.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("client: server rejected submission: %v", e.Fields)
}

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	StatusCode int
	Code       string // the "error" field of the body, if any
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("client: server returned %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("client: server returned %d", e.StatusCode)
}

// Client sends submissions to a portfolio server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL (e.g. "http://localhost:8080").
// A nil httpClient uses a client with a 15 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// CreateSubmission issues exactly one request. It never retries.
func (c *Client) CreateSubmission(ctx context.Context, in contact.Input) (*contact.Ack, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("client: encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("client: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: sending submission: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("client: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		if resp.StatusCode == http.StatusBadRequest && eb.Error == "validation_failed" {
			return nil, &ValidationError{Fields: contact.FieldErrors(eb.Fields)}
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Code: eb.Error}
	}

	var ack contact.Ack
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, fmt.Errorf("client: decoding acknowledgement: %w", err)
	}
	if ack.Message == "" {
		return nil, fmt.Errorf("client: acknowledgement has no message")
	}
	return &ack, nil
}
