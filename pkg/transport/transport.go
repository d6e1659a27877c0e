package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lagowski/go-openprovider/pkg/apierror"
)

// DefaultURL is the production API endpoint.
const DefaultURL = "https://api.openprovider.eu"

// DefaultUserAgent identifies this library to the API.
const DefaultUserAgent = "go-openprovider/0.10"

// ContentType is the media type for request envelopes.
const ContentType = "text/xml; charset=utf-8"

// Config contains transport configuration.
type Config struct {
	// URL is the API endpoint. Defaults to DefaultURL.
	URL string

	// UserAgent is sent with every request. Defaults to DefaultUserAgent.
	UserAgent string

	// Timeout bounds the whole exchange including body read.
	// Defaults to 30 seconds.
	Timeout time.Duration

	// IdleConnTimeout bounds how long kept-alive connections idle.
	// Defaults to 90 seconds.
	IdleConnTimeout time.Duration

	// TLSSkipVerify disables certificate verification. Test endpoints
	// only; verification is on by default.
	TLSSkipVerify bool

	// HTTPClient overrides the built-in client entirely when set.
	// Timeout and TLS settings above are ignored in that case.
	HTTPClient *http.Client
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		URL:             DefaultURL,
		UserAgent:       DefaultUserAgent,
		Timeout:         30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
	}
}

// Transport performs API exchanges against a single endpoint.
type Transport struct {
	client *http.Client
	config *Config
}

// New creates a transport. A nil config selects DefaultConfig.
func New(config *Config) *Transport {
	if config == nil {
		config = DefaultConfig()
	}
	if config.URL == "" {
		config.URL = DefaultURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.IdleConnTimeout == 0 {
		config.IdleConnTimeout = 90 * time.Second
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: config.TLSSkipVerify,
				},
				IdleConnTimeout:     config.IdleConnTimeout,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
			Timeout: config.Timeout,
		}
	}

	return &Transport{
		client: client,
		config: config,
	}
}

// URL returns the configured endpoint.
func (t *Transport) URL() string {
	return t.config.URL
}

// Post sends one request envelope and returns the HTTP response together
// with its fully read body. The response body is already closed. Any
// failure to complete the exchange, including a non-2xx status, returns
// an error wrapping apierror.ErrServiceUnavailable.
func (t *Transport) Post(ctx context.Context, body []byte) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apierror.ErrServiceUnavailable, err)
	}

	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("User-Agent", t.config.UserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apierror.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading response: %v", apierror.ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("%w: unexpected status %s", apierror.ErrServiceUnavailable, resp.Status)
	}

	return resp, responseBody, nil
}
