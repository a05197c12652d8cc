package slack

import (
	"net/http"

	"github.com/antonholmquist/jason"

	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/internal/transport"
)

// slackErrorCodes maps Slack's short error codes to structured error codes.
// Unlisted codes fall back to CodePlatform.
var slackErrorCodes = map[string]errors.ErrorCode{
	"channel_not_found": errors.CodeNotFound,
	"user_not_found":    errors.CodeNotFound,
	"users_not_found":   errors.CodeNotFound,
	"not_authed":        errors.CodeUnauthorized,
	"invalid_auth":      errors.CodeUnauthorized,
	"token_revoked":     errors.CodeUnauthorized,
	"account_inactive":  errors.CodeUnauthorized,
	"missing_scope":     errors.CodeForbidden,
	"restricted_action": errors.CodeForbidden,
	"not_in_channel":    errors.CodeForbidden,
	"invalid_arguments": errors.CodeInvalidInput,
	"invalid_cursor":    errors.CodeInvalidInput,
	"msg_too_long":      errors.CodeInvalidInput,
	"ratelimited":       errors.CodeRateLimit,
	"rate_limited":      errors.CodeRateLimit,
	"fatal_error":       errors.CodeUnavailable,
	"internal_error":    errors.CodeUnavailable,
}

// decodeSlackError detects Slack's error convention: an envelope with
// "ok":false and an "error" short code, usually delivered with an HTTP 200.
func decodeSlackError(status int, body []byte) error {
	obj, err := jason.NewObjectFromBytes(body)
	if err != nil {
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}

	ok, err := obj.GetBoolean("ok")
	if err != nil {
		// Not a Web API envelope.
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}
	if ok {
		return nil
	}

	shortCode, serr := obj.GetString("error")
	if serr != nil {
		code := errors.CodePlatform
		if status >= http.StatusBadRequest {
			code = transport.CodeForStatus(status)
		}
		return errors.New(code, "request was not ok")
	}

	code, known := slackErrorCodes[shortCode]
	if !known {
		code = errors.CodePlatform
		if status >= http.StatusBadRequest {
			code = transport.CodeForStatus(status)
		}
	}

	platformErr := errors.New(code, shortCode)
	return errors.WithContext(platformErr, "slackError", shortCode)
}
