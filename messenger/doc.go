// Package messenger provides a client for the Facebook Messenger Platform
// (Graph API Send API).
//
// The client exposes a camelCase, typed surface; request bodies are
// converted to the Graph API's snake_case wire format and responses back
// again. Graph errors are mapped to structured errors: code 613 (the send
// rate limit) is retryable, token and permission failures are permanent.
//
// # Quick Start
//
//	client := messenger.New("ACCESS_TOKEN")
//
//	resp, err := client.SendText(ctx, "USER_ID", "Hello!", nil)
//	if err != nil {
//	    if errors.IsRetryable(err) {
//	        // back off and try again
//	    }
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.MessageID)
//
// # Batching
//
// SendBatch issues up to 50 operations as a single Graph batch call. Each
// item's outcome is returned in request order; batch.ItemError classifies
// individual failures so a rate-limited item can be distinguished from a
// permanently failed one.
package messenger
