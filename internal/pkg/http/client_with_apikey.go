package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/pocketpay/pocketpay/internal/pkg/logger"
)

// APIKeyHeader is the header name for API key
const APIKeyHeader = "X-API-Key"

// APIKeyClient is an HTTP client with API key authentication used for
// service-to-service calls.
type APIKeyClient struct {
	*Client
	apiKey      string
	serviceName string
}

// NewAPIKeyClient creates a new HTTP client with API key authentication
func NewAPIKeyClient(apiKey, serviceName, baseURL string) *APIKeyClient {
	if apiKey == "" {
		logger.Warn("No API key configured for service", logger.String("service", serviceName))
	}

	return &APIKeyClient{
		Client:      NewClient(baseURL, DefaultTimeout),
		apiKey:      apiKey,
		serviceName: serviceName,
	}
}

// Get performs a GET request with API key authentication
func (c *APIKeyClient) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with API key authentication
func (c *APIKeyClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// doRequest performs the actual HTTP request with API key authentication
func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}
