package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a user, chat, channel, or other resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Permission errors.

	// CodeUnauthorized indicates the access token is missing, invalid, or expired.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the token lacks the permission or scope for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided parameters are invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Infrastructure errors.

	// CodeNetwork indicates the HTTP request itself failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the platform's rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeUnavailable indicates the platform is temporarily unavailable (5xx).
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Platform errors.

	// CodePlatform indicates a failure reported inside an otherwise successful
	// HTTP response, such as Slack's ok:false or a Graph API error body.
	CodePlatform ErrorCode = "PLATFORM_ERROR"

	// CodeMalformedResponse indicates the platform returned a body that could
	// not be decoded as expected.
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	// Generic errors.

	// CodeInternal indicates an internal library error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
