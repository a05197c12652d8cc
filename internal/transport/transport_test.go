package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yoctol/messaging-apis/errors"
)

func TestPost_SnakeCaseOnTheWire(t *testing.T) {
	var wireBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &wireBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recipient_id":"USER_ID","message_id":"mid.123"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	body := map[string]interface{}{
		"messagingType": "RESPONSE",
		"recipient":     map[string]interface{}{"id": "USER_ID"},
	}

	var out struct {
		RecipientID string `json:"recipientId"`
		MessageID   string `json:"messageId"`
	}
	require.NoError(t, client.Post(context.Background(), "/me/messages", body, &out))

	// Request keys were rewritten to snake_case.
	require.Contains(t, wireBody, "messaging_type")
	require.NotContains(t, wireBody, "messagingType")

	// Response keys came back camelCase.
	require.Equal(t, "USER_ID", out.RecipientID)
	require.Equal(t, "mid.123", out.MessageID)
}

func TestPost_WithoutCaseConversion(t *testing.T) {
	var wireBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &wireBody))
		_, _ = w.Write([]byte(`{"displayName":"LINE Bot"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithoutCaseConversion())

	var out struct {
		DisplayName string `json:"displayName"`
	}
	body := map[string]interface{}{"replyToken": "abc"}
	require.NoError(t, client.Post(context.Background(), "/v2/bot/message/reply", body, &out))

	require.Contains(t, wireBody, "replyToken")
	require.Equal(t, "LINE Bot", out.DisplayName)
}

func TestPost_ErrorDecoder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	decoder := func(status int, body []byte) error {
		var envelope struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return errors.Wrap(err, errors.CodeMalformedResponse, "decoding envelope")
		}
		if envelope.OK {
			return nil
		}
		return errors.New(errors.CodeNotFound, envelope.Error)
	}

	client := New(WithBaseURL(server.URL), WithErrorDecoder(decoder))

	err := client.Post(context.Background(), "/chat.postMessage", map[string]interface{}{}, nil)
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	// The request config and raw response ride along as context.
	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, "POST", platformErr.Context()["method"])
	assert.Equal(t, "/chat.postMessage", platformErr.Context()["path"])
	assert.Contains(t, platformErr.Context()["body"], "channel_not_found")
}

func TestPost_DefaultStatusMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	err := client.Post(context.Background(), "/send", map[string]interface{}{}, nil)
	require.Error(t, err)
	require.Equal(t, errors.CodeRateLimit, errors.GetCode(err))
	require.True(t, errors.IsRetryable(err))
}

func TestGet_QueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"first_name":"John"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithQueryParam("access_token", "TOKEN"))

	var out struct {
		FirstName string `json:"firstName"`
	}
	query := url.Values{"fields": {"first_name,last_name"}}
	require.NoError(t, client.Get(context.Background(), "/USER_ID", query, &out))

	require.Equal(t, "TOKEN", gotQuery.Get("access_token"))
	require.Equal(t, "first_name,last_name", gotQuery.Get("fields"))
	require.Equal(t, "John", out.FirstName)
}

func TestPostForm(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		_, _ = w.Write([]byte(`[{"code":200,"body":"{}"}]`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	var out []map[string]interface{}
	form := url.Values{
		"access_token": {"TOKEN"},
		"batch":        {`[{"method":"POST","relative_url":"me/messages"}]`},
	}
	require.NoError(t, client.PostForm(context.Background(), "/", form, &out))

	require.Equal(t, "TOKEN", gotForm.Get("access_token"))
	require.NotEmpty(t, gotForm.Get("batch"))
	require.Len(t, out, 1)
}

func TestPost_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	var out map[string]interface{}
	err := client.Post(context.Background(), "/send", map[string]interface{}{}, &out)
	require.Error(t, err)
	require.Equal(t, errors.CodeMalformedResponse, errors.GetCode(err))
}

func TestPost_TransportFailure(t *testing.T) {
	client := New(WithBaseURL("http://127.0.0.1:1"))

	err := client.Post(context.Background(), "/send", map[string]interface{}{}, nil)
	require.Error(t, err)
	require.Equal(t, errors.CodeNetwork, errors.GetCode(err))
	require.True(t, errors.IsRetryable(err))
}

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   errors.ErrorCode
	}{
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusUnauthorized, errors.CodeUnauthorized},
		{http.StatusForbidden, errors.CodeForbidden},
		{http.StatusBadRequest, errors.CodeInvalidInput},
		{http.StatusTooManyRequests, errors.CodeRateLimit},
		{http.StatusBadGateway, errors.CodeUnavailable},
		{http.StatusConflict, errors.CodePlatform},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeForStatus(tt.status), "status %d", tt.status)
	}
}
