package batch

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/antonholmquist/jason"

	"github.com/Yoctol/messaging-apis/errors"
)

// Known platform error codes recognized in batch item messages.
const (
	// CodeRateLimited is the Graph API send rate limit (error #613).
	CodeRateLimited = 613

	// CodeAccessTokenInvalid indicates an expired or invalid token (#190).
	CodeAccessTokenInvalid = 190

	// CodeInvalidParameter indicates a malformed operation (#100).
	CodeInvalidParameter = 100

	// CodePermissionDenied indicates a missing permission (#10).
	CodePermissionDenied = 10

	// CodeUserUnavailable indicates the recipient cannot be reached (#551).
	CodeUserUnavailable = 551
)

// knownCodes maps recognized message code tokens to structured error codes.
// Order matters for classification when a message carries several tokens,
// so the table is a slice rather than a map.
var knownCodes = []struct {
	code    int
	errCode errors.ErrorCode
}{
	{CodeRateLimited, errors.CodeRateLimit},
	{CodeAccessTokenInvalid, errors.CodeUnauthorized},
	{CodePermissionDenied, errors.CodeForbidden},
	{CodeUserUnavailable, errors.CodeNotFound},
	{CodeInvalidParameter, errors.CodeInvalidInput},
}

// Classified is the result of classifying one batch item's body.
// A zero Classified means no error message could be extracted.
type Classified struct {
	// Message is the platform's human-readable error message, or the
	// empty string if the body did not parse or carried no error.
	Message string
}

// Classify extracts a structured error message from a batch item's raw
// body. It never fails: an unparseable body, a non-object body, or a body
// without an error.message field yields an empty message.
func Classify(res Response) Classified {
	obj, err := jason.NewObjectFromBytes([]byte(res.Body))
	if err != nil {
		return Classified{}
	}

	message, err := obj.GetString("error", "message")
	if err != nil {
		return Classified{}
	}

	return Classified{Message: message}
}

// HasCode reports whether the message carries the "#<code>" token of a
// platform error code. This is a pure string-pattern check.
func (c Classified) HasCode(code int) bool {
	if c.Message == "" {
		return false
	}
	return strings.Contains(c.Message, fmt.Sprintf("#%d", code))
}

// IsRateLimited reports whether the message signals the send rate limit.
func (c Classified) IsRateLimited() bool {
	return c.HasCode(CodeRateLimited)
}

// ErrorCode maps the message to a structured error code. The second return
// is false when no known code token appears in the message.
func (c Classified) ErrorCode() (errors.ErrorCode, bool) {
	for _, known := range knownCodes {
		if c.HasCode(known.code) {
			return known.errCode, true
		}
	}
	return errors.CodeUnknown, false
}

// ItemError converts a failed batch item into a structured error.
// Returns nil for items with a 2xx or 3xx status. For failures, a known
// code token in the message picks the error code (613 yields a retryable
// rate-limit error); otherwise the HTTP status decides. The item's status
// and raw body are attached as context.
func ItemError(res Response) error {
	if res.Code < http.StatusBadRequest {
		return nil
	}

	classified := Classify(res)

	code := codeForStatus(res.Code)
	if known, ok := classified.ErrorCode(); ok {
		code = known
	}

	message := classified.Message
	if message == "" {
		message = fmt.Sprintf("batch operation failed with status %d", res.Code)
	}

	err := errors.New(code, message)
	return errors.WithContextMap(err, map[string]interface{}{
		"status": res.Code,
		"body":   res.Body,
	})
}

// codeForStatus maps an HTTP status code to a structured error code.
func codeForStatus(status int) errors.ErrorCode {
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
