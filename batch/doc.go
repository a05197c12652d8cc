// Package batch defines the request and result items of a multiplexed API
// call and classifies per-item errors.
//
// A batch call carries several logical operations in one HTTP request; the
// platform returns one result per operation, aligned to the request order.
// Each result body is a raw string expected to hold JSON. Classify extracts
// the platform's error message from a result body without ever failing:
// an unparseable or unexpected body yields an empty message, and the caller
// decides whether that is itself a failure signal.
//
// Known platform error codes (for example Graph API code 613, the send rate
// limit) are recognized by their "#<code>" token in the message text. New
// codes are added by extending the recognition table, never by changing the
// extraction logic. This package only classifies; retry and backoff policy
// belong to the caller.
package batch
