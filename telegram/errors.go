package telegram

import (
	"net/http"

	"github.com/antonholmquist/jason"

	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/internal/transport"
)

// decodeBotError detects the Bot API error convention: an envelope with
// "ok":false, a "description" and an "error_code" that mirrors an HTTP
// status (400, 401, 403, 429, ...).
func decodeBotError(status int, body []byte) error {
	obj, err := jason.NewObjectFromBytes(body)
	if err != nil {
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}

	ok, err := obj.GetBoolean("ok")
	if err != nil {
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}
	if ok {
		return nil
	}

	code := transport.CodeForStatus(status)
	if status < http.StatusBadRequest {
		code = errors.CodePlatform
	}
	errorCode, cerr := obj.GetInt64("error_code")
	if cerr == nil {
		code = transport.CodeForStatus(int(errorCode))
	}

	message, derr := obj.GetString("description")
	if derr != nil {
		message = "request was not ok"
	}

	platformErr := errors.New(code, message)
	if cerr == nil {
		return errors.WithContext(platformErr, "errorCode", errorCode)
	}
	return platformErr
}
