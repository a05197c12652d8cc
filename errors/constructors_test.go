package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "user not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "user not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeNotFound,
		CodeUnauthorized,
		CodeForbidden,
		CodeInvalidInput,
		CodeNetwork,
		CodeTimeout,
		CodeRateLimit,
		CodeUnavailable,
		CodePlatform,
		CodeMalformedResponse,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "invalid recipient id: %q", "abc")

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, `invalid recipient id: "abc"`, err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
}

func TestNewf_RetryableCode(t *testing.T) {
	err := Newf(CodeRateLimit, "rate limited, retry after %ds", 30)

	require.Equal(t, CodeRateLimit, err.Code())
	require.True(t, err.Classification().IsRetryable())
}
