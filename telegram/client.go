package telegram

import (
	"net/http"

	"github.com/Yoctol/messaging-apis/internal/transport"
)

const defaultOrigin = "https://api.telegram.org"

// Client is a Telegram Bot API client bound to a single bot token.
type Client struct {
	transport *transport.Client
}

type config struct {
	origin     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*config)

// WithOrigin overrides the API origin. Useful for tests and local bot API
// servers.
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

// New creates a Telegram client for the bot identified by token.
func New(token string, opts ...Option) *Client {
	cfg := config{origin: defaultOrigin}
	for _, opt := range opts {
		opt(&cfg)
	}

	topts := []transport.Option{
		transport.WithBaseURL(cfg.origin + "/bot" + token),
		transport.WithErrorDecoder(decodeBotError),
	}
	if cfg.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(cfg.httpClient))
	}

	return &Client{transport: transport.New(topts...)}
}
