package messenger

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/Yoctol/messaging-apis/internal/transport"
)

// defaultOrigin is the Graph API host.
const defaultOrigin = "https://graph.facebook.com"

// defaultVersion is the Graph API version used when none is configured.
const defaultVersion = "6.0"

// Client is a Facebook Messenger Platform client.
type Client struct {
	transport   *transport.Client
	accessToken string
	version     string
}

// config holds construction-time settings.
type config struct {
	version    string
	origin     string
	appSecret  string
	httpClient *http.Client
}

// Option configures the Messenger client.
type Option func(*config)

// WithVersion sets the Graph API version, for example "12.0".
func WithVersion(version string) Option {
	return func(cfg *config) {
		cfg.version = version
	}
}

// WithOrigin replaces the Graph API host. Intended for tests and proxies.
func WithOrigin(origin string) Option {
	return func(cfg *config) {
		cfg.origin = origin
	}
}

// WithAppSecret enables appsecret_proof request signing. The proof is the
// HMAC-SHA256 of the access token keyed by the app secret, sent with every
// request as required by app settings with "Require App Secret" enabled.
func WithAppSecret(appSecret string) Option {
	return func(cfg *config) {
		cfg.appSecret = appSecret
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = hc
	}
}

// New creates a Messenger client authenticated by a page access token.
func New(accessToken string, opts ...Option) *Client {
	cfg := &config{
		version: defaultVersion,
		origin:  defaultOrigin,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	topts := []transport.Option{
		transport.WithBaseURL(cfg.origin + "/v" + cfg.version),
		transport.WithQueryParam("access_token", accessToken),
		transport.WithErrorDecoder(decodeGraphError),
	}
	if cfg.appSecret != "" {
		topts = append(topts, transport.WithQueryParam("appsecret_proof", appSecretProof(accessToken, cfg.appSecret)))
	}
	if cfg.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(cfg.httpClient))
	}

	return &Client{
		transport:   transport.New(topts...),
		accessToken: accessToken,
		version:     cfg.version,
	}
}

// Version returns the configured Graph API version.
func (c *Client) Version() string {
	return c.version
}

// appSecretProof computes the HMAC-SHA256 of the access token keyed by the
// app secret, hex-encoded.
func appSecretProof(accessToken, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}
