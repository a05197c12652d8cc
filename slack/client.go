package slack

import (
	"net/http"

	"github.com/Yoctol/messaging-apis/internal/transport"
)

const defaultOrigin = "https://slack.com"

// Client is a Slack Web API client bound to a single access token.
type Client struct {
	transport *transport.Client
}

type config struct {
	origin     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*config)

// WithOrigin overrides the API origin. Useful for tests and proxies.
func WithOrigin(origin string) Option {
	return func(c *config) {
		c.origin = origin
	}
}

// WithHTTPClient supplies a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// New creates a Slack client authenticated with accessToken.
func New(accessToken string, opts ...Option) *Client {
	cfg := config{origin: defaultOrigin}
	for _, opt := range opts {
		opt(&cfg)
	}

	topts := []transport.Option{
		transport.WithBaseURL(cfg.origin + "/api"),
		transport.WithAuthToken(accessToken),
		transport.WithErrorDecoder(decodeSlackError),
	}
	if cfg.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(cfg.httpClient))
	}

	return &Client{transport: transport.New(topts...)}
}
