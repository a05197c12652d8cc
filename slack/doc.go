// Package slack provides a thin client for the Slack Web API.
//
// The client authenticates with a bot or OAuth access token and exposes the
// chat, users and conversations methods the messaging surface needs. Request
// and response keys use camelCase on the Go side and snake_case on the wire.
//
// Slack reports most failures with an HTTP 200 carrying {"ok":false,
// "error":"<short code>"}. The client detects this convention and maps the
// short codes to structured errors, so callers can branch on errors.GetCode
// and errors.IsRetryable instead of parsing response bodies.
//
// Example:
//
//	client := slack.New(token)
//	_, err := client.PostMessage(ctx, "#general", "Hello!")
package slack
