// Package errors provides structured error handling for the messaging clients.
//
// Every platform client in this repository reports failures through this
// package: a messaging API error is wrapped into a PlatformError carrying an
// error code, a retry classification, the platform's human-readable message,
// and context metadata describing the originating request and the raw
// response. The package stays fully compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "user not found")
//	err := errors.Newf(errors.CodeInvalidInput, "invalid recipient id: %q", id)
//
// Wrapping a transport failure:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "request failed")
//	}
//
// Attaching request context:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "method": "POST",
//	    "path":   "/me/messages",
//	    "body":   string(raw),
//	})
//
// Retry decisions:
//
//	if errors.IsRetryable(err) {
//	    // caller-side backoff; this package never retries
//	}
//
// # Error Classification
//
// Each error code carries a default classification, either retryable
// (rate limits, timeouts, network failures, platform outages) or permanent
// (invalid input, auth failures, missing resources). The classification is
// preserved across wrapping and can be overridden with WithClassification.
//
// # JSON Serialization
//
// ToJSON flattens any error into an ErrorResponse suitable for API
// responses. The wrapped error chain is intentionally excluded so internal
// details such as tokens or raw request bodies never leak to callers.
package errors
