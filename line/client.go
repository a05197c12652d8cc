package line

import (
	"net/http"

	"github.com/Yoctol/messaging-apis/internal/transport"
)

// defaultOrigin is the LINE Messaging API host.
const defaultOrigin = "https://api.line.me"

// maxMessagesPerSend is the LINE limit on messages per send operation.
const maxMessagesPerSend = 5

// Client is a LINE Messaging API client.
type Client struct {
	transport *transport.Client
}

// config holds construction-time settings.
type config struct {
	origin     string
	httpClient *http.Client
}

// Option configures the LINE client.
type Option func(*config)

// WithOrigin replaces the API host. Intended for tests and proxies.
func WithOrigin(origin string) Option {
	return func(cfg *config) {
		cfg.origin = origin
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = hc
	}
}

// New creates a LINE client authenticated by a channel access token.
func New(channelAccessToken string, opts ...Option) *Client {
	cfg := &config{origin: defaultOrigin}
	for _, opt := range opts {
		opt(cfg)
	}

	topts := []transport.Option{
		transport.WithBaseURL(cfg.origin),
		transport.WithAuthToken(channelAccessToken),
		transport.WithErrorDecoder(decodeLINEError),
		// LINE's wire format is already camelCase.
		transport.WithoutCaseConversion(),
	}
	if cfg.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(cfg.httpClient))
	}

	return &Client{transport: transport.New(topts...)}
}
