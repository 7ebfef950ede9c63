package nominatim

import (
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	UserAgent  string       // Required by the usage policy; defaults to DefaultUserAgent
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with a 10s timeout)
	BaseURL    string       // Optional: Base URL (defaults to the public instance, used for testing)
	Language   string       // Optional: Accept-Language for display names
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Client performs geocoding lookups against a Nominatim instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
	logger     Logger
}

const (
	// DefaultBaseURL is the public OpenStreetMap Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultUserAgent identifies requests when Config.UserAgent is empty.
	DefaultUserAgent = "homepod/1.0"

	defaultTimeout = 10 * time.Second
)

// NewClient creates a new Nominatim client.
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

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		language:   cfg.Language,
		logger:     cfg.Logger,
	}
}

func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
