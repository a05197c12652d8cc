package messenger

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/Yoctol/messaging-apis/batch"
	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/keycase"
)

// maxBatchSize is the Graph API limit on operations per batch call.
const maxBatchSize = 50

// batchItem is the wire form of one batch operation. POST bodies are
// url-encoded into a single string, per the Graph batch convention.
type batchItem struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
	Body        string `json:"body,omitempty"`
	Name        string `json:"name,omitempty"`
	DependsOn   string `json:"depends_on,omitempty"`
}

// SendBatch issues up to 50 operations as one Graph batch call. The
// returned responses align to the request order; individual failures do
// not fail the call. Use batch.ItemError or batch.Classify on each item
// to separate rate-limited operations from permanent failures.
func (c *Client) SendBatch(ctx context.Context, requests []batch.Request) ([]batch.Response, error) {
	if len(requests) == 0 {
		return nil, errors.New(errors.CodeInvalidInput, "batch cannot be empty")
	}
	if len(requests) > maxBatchSize {
		return nil, errors.Newf(errors.CodeInvalidInput, "batch size %d exceeds the %d operation limit", len(requests), maxBatchSize)
	}

	items := make([]batchItem, len(requests))
	for i, req := range requests {
		body, err := encodeBatchBody(req.Body)
		if err != nil {
			return nil, err
		}
		items[i] = batchItem{
			Method:      req.Method,
			RelativeURL: req.RelativeURL,
			Body:        body,
			Name:        req.Name,
			DependsOn:   req.DependsOn,
		}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "encoding batch")
	}

	form := url.Values{
		"access_token":    {c.accessToken},
		"include_headers": {"false"},
		"batch":           {string(payload)},
	}

	var out []batch.Response
	if err := c.transport.PostForm(ctx, "/", form, &out); err != nil {
		return nil, err
	}
	if len(out) != len(requests) {
		return nil, errors.Newf(errors.CodeMalformedResponse, "batch returned %d results for %d operations", len(out), len(requests))
	}
	return out, nil
}

// encodeBatchBody url-encodes an operation body. Keys are rewritten to
// snake_case; non-string values are JSON-encoded, matching how the Graph
// API expects nested parameters inside batch items.
func encodeBatchBody(body map[string]interface{}) (string, error) {
	if len(body) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		var value string
		switch v := body[k].(type) {
		case string:
			value = v
		default:
			encoded, err := json.Marshal(keycase.SnakeKeys(v))
			if err != nil {
				return "", errors.Wrapf(err, errors.CodeInvalidInput, "encoding batch body field %q", k)
			}
			value = string(encoded)
		}
		pairs = append(pairs, url.QueryEscape(keycase.ToSnake(k))+"="+url.QueryEscape(value))
	}
	return strings.Join(pairs, "&"), nil
}
