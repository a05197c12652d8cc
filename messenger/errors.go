package messenger

import (
	"net/http"

	"github.com/antonholmquist/jason"

	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/internal/transport"
)

// graphErrorCodes maps Graph API error codes to structured error codes.
// New codes are added here; extraction stays unchanged.
var graphErrorCodes = map[int64]errors.ErrorCode{
	613: errors.CodeRateLimit,    // send rate limit
	190: errors.CodeUnauthorized, // invalid or expired token
	100: errors.CodeInvalidInput,
	10:  errors.CodeForbidden,
	551: errors.CodeNotFound, // person unavailable
}

// decodeGraphError detects the Graph API error convention:
// {"error":{"message","type","code",...}} on a non-2xx status, occasionally
// on a 2xx one.
func decodeGraphError(status int, body []byte) error {
	obj, err := jason.NewObjectFromBytes(body)
	if err != nil {
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}

	message, err := obj.GetString("error", "message")
	if err != nil {
		// No error object in the body.
		if status >= http.StatusBadRequest {
			return errors.Newf(transport.CodeForStatus(status), "unexpected status %d", status)
		}
		return nil
	}

	code := transport.CodeForStatus(status)
	if status < http.StatusBadRequest {
		code = errors.CodePlatform
	}
	if graphCode, cerr := obj.GetInt64("error", "code"); cerr == nil {
		if mapped, ok := graphErrorCodes[graphCode]; ok {
			code = mapped
		}
	}

	platformErr := errors.New(code, message)
	if errType, terr := obj.GetString("error", "type"); terr == nil {
		return errors.WithContext(platformErr, "type", errType)
	}
	return platformErr
}
