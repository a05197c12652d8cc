// Package line provides a client for the LINE Messaging API.
//
// Unlike the Graph-style platforms, LINE already speaks camelCase on the
// wire, so the client runs without key-casing conversion; its typed
// surface maps one-to-one onto the wire format. Failures carry LINE's
// error message and map the HTTP status to a structured error code.
//
// # Quick Start
//
//	client := line.New("CHANNEL_ACCESS_TOKEN")
//
//	err := client.ReplyMessage(ctx, replyToken, line.NewTextMessage("Hello!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
package line
