package rottentomatoes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the root of the public v1.0 API
	DefaultBaseURL = "http://api.rottentomatoes.com/api/public/v1.0"

	defaultTimeout = 30 * time.Second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client represents a Rotten Tomatoes API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Rotten Tomatoes client. The API key is sent as
// given with every request.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no
// effect when a custom client was supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok && timeout > 0 {
			hc.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// APIKey returns the key attached to every request
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the URL all endpoint paths are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request performs a GET for path and returns the decoded JSON body.
// The status code is only used for logging and error context.
func (c *Client) request(ctx context.Context, path string, args Args, allowed []Param) (any, error) {
	params := c.buildParams(args, allowed)
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("path", path).
		Str("query", redactedQuery(params)).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("Rotten Tomatoes API request")

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), 512),
			Err:        err,
		}
	}

	return result, nil
}

// redactedQuery encodes params without the API key for logging
func redactedQuery(params url.Values) string {
	redacted := url.Values{}
	for k, vs := range params {
		if k != string(ParamAPIKey) {
			redacted[k] = vs
		}
	}
	return redacted.Encode()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
