package rmbrowse

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/errors"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// Option is a function that configures a Client
type Option func(*config) error

// config holds the client configuration
type config struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		baseURL:   constants.DefaultBaseURL,
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: constants.DefaultUserAgent,
		logger:    logging.Nop,
	}
}

// WithBaseURL configures the API root, e.g. a mirror or a test server
func WithBaseURL(raw string) Option {
	return func(c *config) error {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.NewConfigError("client", "base URL must be an absolute URL", err)
		}
		c.baseURL = raw
		return nil
	}
}

// WithHTTPClient configures the HTTP client requests are sent with
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		if hc == nil {
			return errors.NewConfigError("client", "HTTP client must not be nil", nil)
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout configures the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewConfigError("client", "timeout must be positive", nil)
		}
		c.timeout = d
		return nil
	}
}

// WithUserAgent configures the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.userAgent = ua
		return nil
	}
}

// WithLogger configures the logger shared by every component
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}
