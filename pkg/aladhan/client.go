package aladhan

import (
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with a 10s timeout)
	BaseURL    string       // Optional: Base URL for API (defaults to Aladhan API, used for testing)
	UserAgent  string       // Optional: User-Agent header
	Logger     Logger       // Optional: Logger interface for debug logging
	MaxRetries int          // Optional: attempts per call (defaults to 3)
	Backoff    time.Duration
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Aladhan API operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     Logger
	maxRetries int
	backoff    time.Duration
}

const (
	// DefaultBaseURL is the default Aladhan API endpoint.
	DefaultBaseURL = "https://api.aladhan.com/v1"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "homepod/1.0"

	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultBackoff    = 1 * time.Second
)

// NewClient creates a new Aladhan API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     cfg.Logger,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
