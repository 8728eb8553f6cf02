// Package client provides a typed Go SDK for the phylo REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the top-level phylo API client.
type Client struct {
	baseURL    string
	requestID  string
	httpClient *http.Client

	Relations *RelationService
	Trees     *TreeService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRequestID sends the given UUID as X-Request-ID on every request so
// server logs can be correlated with the caller's.
func WithRequestID(id string) Option {
	return func(c *Client) { c.requestID = id }
}

// New creates a phylo client for the given base URL (e.g. "http://localhost:3040").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	c.Relations = &RelationService{c: c}
	c.Trees = &TreeService{c: c}
	return c
}

// Health returns the liveness check response.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get(ctx, "/api/v1/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ready returns the readiness check response. A not-ready server answers
// 503, which is reported as an *APIError.
func (c *Client) Ready(ctx context.Context) (*ReadinessResponse, error) {
	var resp ReadinessResponse
	if err := c.get(ctx, "/api/v1/ready", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// raw executes a GET request and returns the response body unparsed.
func (c *Client) raw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.requestID != "" {
		req.Header.Set("X-Request-ID", c.requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// get executes a GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	body, err := c.raw(ctx, path, params)
	if err != nil {
		return err
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func treePath(treeID string) string {
	return "/api/v1/trees/" + url.PathEscape(treeID)
}
