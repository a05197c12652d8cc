package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yoctol/messaging-apis/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "error message present",
			body: `{"error":{"message":"Error #613 occurred"}}`,
			want: "Error #613 occurred",
		},
		{
			name: "full graph error body",
			body: `{"error":{"message":"(#613) Calls to this api have exceeded the rate limit.","type":"OAuthException","code":613}}`,
			want: "(#613) Calls to this api have exceeded the rate limit.",
		},
		{
			name: "not json",
			body: "not json",
			want: "",
		},
		{
			name: "no error key",
			body: `{"ok":true}`,
			want: "",
		},
		{
			name: "error is not an object",
			body: `{"error":"boom"}`,
			want: "",
		},
		{
			name: "message is not a string",
			body: `{"error":{"message":42}}`,
			want: "",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "json array body",
			body: `[1,2,3]`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				got := Classify(Response{Code: 400, Body: tt.body})
				require.Equal(t, tt.want, got.Message)
			})
		})
	}
}

func TestClassified_HasCode(t *testing.T) {
	c := Classify(Response{Body: `{"error":{"message":"Error #613 occurred"}}`})

	assert.True(t, c.HasCode(613))
	assert.False(t, c.HasCode(190))

	empty := Classify(Response{Body: "not json"})
	assert.False(t, empty.HasCode(613))
}

func TestClassified_IsRateLimited(t *testing.T) {
	limited := Classify(Response{
		Body: `{"error":{"message":"(#613) Calls to this api have exceeded the rate limit."}}`,
	})
	assert.True(t, limited.IsRateLimited())

	other := Classify(Response{
		Body: `{"error":{"message":"(#100) Invalid parameter"}}`,
	})
	assert.False(t, other.IsRateLimited())
}

func TestClassified_ErrorCode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    errors.ErrorCode
		known   bool
	}{
		{
			name:    "rate limit",
			message: "(#613) Calls to this api have exceeded the rate limit.",
			want:    errors.CodeRateLimit,
			known:   true,
		},
		{
			name:    "invalid token",
			message: "Error validating access token (#190)",
			want:    errors.CodeUnauthorized,
			known:   true,
		},
		{
			name:    "invalid parameter",
			message: "(#100) Invalid parameter",
			want:    errors.CodeInvalidInput,
			known:   true,
		},
		{
			name:    "permission denied",
			message: "(#10) This message is sent outside of allowed window",
			want:    errors.CodeForbidden,
			known:   true,
		},
		{
			name:    "user unavailable",
			message: "(#551) This person isn't available right now.",
			want:    errors.CodeNotFound,
			known:   true,
		},
		{
			name:    "unrecognized code",
			message: "(#9999) Something new",
			want:    errors.CodeUnknown,
			known:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classified{Message: tt.message}
			got, known := c.ErrorCode()
			require.Equal(t, tt.known, known)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestItemError_Success(t *testing.T) {
	require.NoError(t, ItemError(Response{Code: 200, Body: `{"recipient_id":"1"}`}))
	require.NoError(t, ItemError(Response{Code: 204, Body: ""}))
}

func TestItemError_RateLimited(t *testing.T) {
	err := ItemError(Response{
		Code: 400,
		Body: `{"error":{"message":"(#613) Calls to this api have exceeded the rate limit.","code":613}}`,
	})

	require.Error(t, err)
	require.Equal(t, errors.CodeRateLimit, errors.GetCode(err))
	require.True(t, errors.IsRetryable(err))

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	require.Equal(t, 400, platformErr.Context()["status"])
}

func TestItemError_UnparseableBody(t *testing.T) {
	err := ItemError(Response{Code: 500, Body: "<html>gateway error</html>"})

	require.Error(t, err)
	require.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	require.True(t, errors.IsRetryable(err))
}

func TestItemError_StatusFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   errors.ErrorCode
	}{
		{"unauthorized", 401, errors.CodeUnauthorized},
		{"forbidden", 403, errors.CodeForbidden},
		{"not found", 404, errors.CodeNotFound},
		{"too many requests", 429, errors.CodeRateLimit},
		{"bad request", 400, errors.CodeInvalidInput},
		{"server error", 502, errors.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ItemError(Response{Code: tt.status, Body: `{}`})
			require.Equal(t, tt.want, errors.GetCode(err))
		})
	}
}

func TestResponse_Succeeded(t *testing.T) {
	assert.True(t, Response{Code: 200}.Succeeded())
	assert.True(t, Response{Code: 201}.Succeeded())
	assert.False(t, Response{Code: 400}.Succeeded())
	assert.False(t, Response{Code: 0}.Succeeded())
}
