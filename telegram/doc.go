// Package telegram provides a thin client for the Telegram Bot API.
//
// Every method is routed through https://api.telegram.org/bot<token> and
// returns the envelope {"ok":true,"result":...}. The client unwraps the
// result and maps {"ok":false,"error_code","description"} responses to
// structured errors. Request and response keys use camelCase on the Go side
// and snake_case on the wire.
//
// Chat identifiers are strings so callers can pass either a numeric chat ID
// or a channel username such as "@channelusername".
//
// Example:
//
//	client := telegram.New(token)
//	msg, err := client.SendMessage(ctx, "427770117", "Hello!", nil)
package telegram
