package transport

import (
	"net/http"
	"time"
)

// Option configures the transport client.
type Option func(*Client)

// WithBaseURL sets the API root all paths are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.rest.SetBaseURL(baseURL)
	}
}

// WithAuthToken sends the token as a Bearer Authorization header.
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.rest.SetAuthToken(token)
	}
}

// WithQueryParam appends a fixed query parameter to every request.
// Platforms that authenticate through the query string (the Graph API's
// access_token) use this instead of WithAuthToken.
func WithQueryParam(key, value string) Option {
	return func(c *Client) {
		c.rest.SetQueryParam(key, value)
	}
}

// WithHTTPClient replaces the underlying HTTP client. This allows full
// control over transport configuration, proxies, and timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rest = c.rest.SetTransport(hc.Transport).SetTimeout(hc.Timeout)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithErrorDecoder installs the platform's error convention.
func WithErrorDecoder(decode ErrorDecoder) Option {
	return func(c *Client) {
		c.decodeError = decode
	}
}

// WithoutCaseConversion disables the snake_case/camelCase rewriting for
// platforms whose wire format already matches the public surface.
func WithoutCaseConversion() Option {
	return func(c *Client) {
		c.convertCase = false
	}
}
