package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the production testmail.app GraphQL endpoint.
const DefaultEndpoint = "https://api.testmail.app/api/graphql"

const defaultHTTPTimeout = 30 * time.Second

// Client is the HTTP client for the testmail.app GraphQL API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *zap.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRetryConfig sets the per-request retry configuration.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the logger used for transport-level debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		retry:  DefaultRetryConfig(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do executes a GraphQL query with the given variables and decodes the
// response data into result. Variables are sent as a structured JSON
// object, never interpolated into the query document.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, result any) error {
	payload, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	resp, err := c.send(ctx, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    envelope.Errors[0].Message,
		}
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}

// send performs the HTTP POST, retrying transient failures according to
// the client's retry configuration. The request is rebuilt on every
// attempt because the body reader is consumed by each send.
func (c *Client) send(ctx context.Context, payload []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = &NetworkError{Err: err, URL: c.endpoint, Attempt: attempt + 1}
			if attempt < c.retry.MaxRetries {
				c.logger.Debug("request failed, retrying",
					zap.Int("attempt", attempt+1),
					zap.Error(err))
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, lastErr
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.logger.Debug("retryable status, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("status", resp.StatusCode))
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return nil, werr
			}
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Errors []graphQLError `json:"errors"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Errors[0].Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}
