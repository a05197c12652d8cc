package line

import (
	"net/http"

	"github.com/antonholmquist/jason"

	"github.com/Yoctol/messaging-apis/errors"
	"github.com/Yoctol/messaging-apis/internal/transport"
)

// decodeLINEError detects LINE's error convention: a non-2xx status with
// {"message":"...","details":[{"message","property"},...]}.
func decodeLINEError(status int, body []byte) error {
	if status < http.StatusBadRequest {
		return nil
	}

	code := transport.CodeForStatus(status)

	obj, err := jason.NewObjectFromBytes(body)
	if err != nil {
		return errors.Newf(code, "unexpected status %d", status)
	}

	message, err := obj.GetString("message")
	if err != nil || message == "" {
		return errors.Newf(code, "unexpected status %d", status)
	}

	platformErr := errors.New(code, message)
	if details, derr := obj.GetObjectArray("details"); derr == nil && len(details) > 0 {
		properties := make([]string, 0, len(details))
		for _, detail := range details {
			if property, perr := detail.GetString("property"); perr == nil {
				properties = append(properties, property)
			}
		}
		if len(properties) > 0 {
			return errors.WithContext(platformErr, "properties", properties)
		}
	}
	return platformErr
}
