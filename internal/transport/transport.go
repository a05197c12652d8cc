package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/keycase"
)

// ErrorDecoder inspects a platform response and reports a platform-level
// failure. It receives the HTTP status and the raw body, and returns nil
// when the response is a success. Platform-reported failures embedded in
// 2xx responses (Slack's ok:false, Telegram's ok:false) are detected here.
type ErrorDecoder func(status int, body []byte) error

// Client is the shared HTTP core of the platform clients.
type Client struct {
	rest        *resty.Client
	decodeError ErrorDecoder
	convertCase bool
}

// New creates a transport client. By default request keys are converted to
// snake_case and response keys to camelCase; non-2xx statuses without a
// platform error body are mapped by status code.
func New(opts ...Option) *Client {
	c := &Client{
		rest:        resty.New(),
		convertCase: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rest returns the underlying resty client.
// This is an escape hatch for requests the typed surface does not cover.
func (c *Client) Rest() *resty.Client {
	return c.rest
}

// Post issues a JSON POST. body may be a typed struct with camelCase json
// tags or a map; out receives the decoded, camelCase response and may be
// nil when the caller only cares about success.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := c.encode(body)
	if err != nil {
		return err
	}

	req := c.rest.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Post(path)
	return c.handle(resp, err, http.MethodPost, path, out)
}

// PostForm issues a form-encoded POST. Used by batch endpoints whose items
// are url-encoded inside a single form field.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post(path)
	return c.handle(resp, err, http.MethodPost, path, out)
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req := c.rest.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	return c.handle(resp, err, http.MethodGet, path, out)
}

// encode marshals body and rewrites its keys for the wire.
func (c *Client) encode(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "encoding request body")
	}

	if !c.convertCase {
		return raw, nil
	}

	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "encoding request body")
	}

	converted, err := json.Marshal(keycase.SnakeKeys(tree))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "encoding request body")
	}
	return converted, nil
}

// handle maps transport failures, runs the platform error decoder, and
// decodes the response body into out.
func (c *Client) handle(resp *resty.Response, err error, method, path string, out interface{}) error {
	requestCtx := map[string]interface{}{
		"method": method,
		"path":   path,
	}

	if err != nil {
		code := errors.CodeNetwork
		if errors.Is(err, context.DeadlineExceeded) {
			code = errors.CodeTimeout
		}
		return errors.WrapWithContext(err, code, "request failed", requestCtx)
	}

	raw := resp.Body()
	requestCtx["status"] = resp.StatusCode()
	requestCtx["body"] = string(raw)

	if c.decodeError != nil {
		if derr := c.decodeError(resp.StatusCode(), raw); derr != nil {
			return errors.WithContextMap(derr, requestCtx)
		}
	} else if resp.IsError() {
		err := errors.Newf(CodeForStatus(resp.StatusCode()), "unexpected status %d", resp.StatusCode())
		return errors.WithContextMap(err, requestCtx)
	}

	if out == nil {
		return nil
	}
	return c.decode(raw, out, requestCtx)
}

// decode rewrites the response keys to the public convention and decodes
// the result into out.
func (c *Client) decode(raw []byte, out interface{}, requestCtx map[string]interface{}) error {
	if !c.convertCase {
		if err := json.Unmarshal(raw, out); err != nil {
			wrapped := errors.Wrap(err, errors.CodeMalformedResponse, "decoding response body")
			return errors.WithContextMap(wrapped, requestCtx)
		}
		return nil
	}

	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		wrapped := errors.Wrap(err, errors.CodeMalformedResponse, "decoding response body")
		return errors.WithContextMap(wrapped, requestCtx)
	}

	converted, err := json.Marshal(keycase.CamelKeys(tree))
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeMalformedResponse, "decoding response body")
		return errors.WithContextMap(wrapped, requestCtx)
	}

	if err := json.Unmarshal(converted, out); err != nil {
		wrapped := errors.Wrap(err, errors.CodeMalformedResponse, "decoding response body")
		return errors.WithContextMap(wrapped, requestCtx)
	}
	return nil
}

// CodeForStatus maps an HTTP status code to a structured error code.
// Used by the platform error decoders as the fallback when the body does
// not identify the failure.
func CodeForStatus(status int) errors.ErrorCode {
	switch status {
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		return errors.CodeRateLimit
	default:
		if status >= 500 {
			return errors.CodeUnavailable
		}
		return errors.CodePlatform
	}
}
