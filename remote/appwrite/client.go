// Package appwrite implements the remote identity service adapter over the
// Appwrite v1 REST API. Session state is carried by cookies on the underlying
// HTTP client, matching the behavior of the hosted SDKs.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/lifefellowship/fellowship-client/config"
	"github.com/lifefellowship/fellowship-client/logger"
)

// Client is the low-level REST client shared by the account and database
// adapters.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
	endpoint   string
	projectID  string
}

// NewClient creates a new Client for the configured backend. The HTTP client
// carries a cookie jar so the server-issued session survives across calls.
func NewClient(cfg config.Backend, logger *logger.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout, Jar: jar}, logger), nil
}

// NewClientWithHTTP allows injecting the HTTP client (used in tests).
func NewClientWithHTTP(cfg config.Backend, httpClient *http.Client, logger *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		endpoint:   cfg.Endpoint,
		projectID:  cfg.ProjectID,
	}
}

// do executes a JSON request against the API and decodes the response into
// out when out is non-nil. Responses with status >= 400 are decoded from the
// service's error envelope and classified into model error kinds.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Appwrite-Project", c.projectID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Appwrite client: request failed",
			"method", method,
			"path", path,
			"error", err.Error())
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		c.logger.Debug("Appwrite client: API error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"error", apiErr.Error())
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
