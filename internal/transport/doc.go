// Package transport implements the HTTP core shared by the platform clients.
//
// Every client method follows the same flow: the typed, camelCase request
// body is converted to snake_case, the call is issued over a shared resty
// client, the platform's error convention is checked through a pluggable
// decoder, and the response body is converted back to camelCase before it
// is decoded into the caller's typed value. Platforms whose wire format is
// already camelCase (LINE) disable the conversion.
//
// The transport never retries and never intercepts transport-level
// failures beyond wrapping them; cancellation and timeouts belong to the
// caller's context and the configured HTTP client.
package transport
