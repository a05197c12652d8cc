package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := New(CodeRateLimit, "(#613) Calls to this api have exceeded the rate limit.")
	err = WithContext(err, "path", "/me/messages")

	resp := ToJSON(err)

	require.NotNil(t, resp)
	require.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	require.Equal(t, "(#613) Calls to this api have exceeded the rate limit.", resp.Message)
	require.Equal(t, "RETRYABLE", resp.Classification)
	require.Equal(t, "/me/messages", resp.Context["path"])
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain failure"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "plain failure", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Nil(t, resp.Context)
}

func TestToJSON_ExcludesChain(t *testing.T) {
	cause := stderrors.New("token=SECRET leaked in cause")
	err := Wrap(cause, CodePlatform, "message rejected")

	resp := ToJSON(err)

	// Only the outer message is exposed, never the wrapped chain.
	require.Equal(t, "message rejected", resp.Message)
	require.NotContains(t, resp.Message, "SECRET")
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeNotFound, "user not found")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "NOT_FOUND", decoded["code"])
	require.Equal(t, "user not found", decoded["message"])
	require.Equal(t, "PERMANENT", decoded["classification"])
	require.NotContains(t, decoded, "context")
}

func TestMarshalJSON_WithContext(t *testing.T) {
	err := New(CodePlatform, "rejected")
	err = WithContext(err, "status", 400)

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded struct {
		Context map[string]interface{} `json:"context"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, float64(400), decoded.Context["status"])
}
