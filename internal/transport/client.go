// Package transport issues requests against the Rick and Morty REST API.
// It resolves a path and query to a raw response and leaves status
// handling and decoding to Decode.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/errors"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// Getter issues GET requests relative to the API base URL.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	URL        string
}

// Client is a Getter over net/http.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.Component(l, "transport")
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: constants.DefaultUserAgent,
		logger:    logging.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client resolves paths against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request. Any response, whatever its status, is returned
// without error; only failures to obtain one produce a TransportError.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	target := c.resolve(path, query)
	logger := c.requestLogger(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.WrapTransport(http.MethodGet, target, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("url", target).Msg("request failed")
		return nil, errors.WrapTransport(http.MethodGet, target, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("url", target).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.WrapTransport(http.MethodGet, target, err)
	}

	logger.Debug().
		Str("method", http.MethodGet).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("request completed")

	return &Response{StatusCode: resp.StatusCode, Body: body, URL: target}, nil
}

// requestLogger prefers a logger carried on ctx, which holds the caller's
// request fields, over the client's own.
func (c *Client) requestLogger(ctx context.Context) zerolog.Logger {
	if l, ok := logging.Lookup(ctx); ok {
		return logging.Component(*l, "transport")
	}
	return c.logger
}

func (c *Client) resolve(path string, query url.Values) string {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}
