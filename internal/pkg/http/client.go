package http

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every cross-service call; a call that exceeds it
// counts as a failed step.
const DefaultTimeout = 10 * time.Second

// Client is a generic HTTP client for communicating with services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
