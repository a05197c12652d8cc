package line

import (
	"context"

	"github.com/Yoctol/messaging-apis/errors"
)

// ReplyMessage answers a received event using its reply token. A reply
// token is single-use and expires shortly after the event.
func (c *Client) ReplyMessage(ctx context.Context, replyToken string, messages ...Message) error {
	if replyToken == "" {
		return errors.New(errors.CodeInvalidInput, "reply token cannot be empty")
	}
	if err := validateMessages(messages); err != nil {
		return err
	}

	body := struct {
		ReplyToken string    `json:"replyToken"`
		Messages   []Message `json:"messages"`
	}{ReplyToken: replyToken, Messages: messages}

	return c.transport.Post(ctx, "/v2/bot/message/reply", body, nil)
}

// PushMessage sends messages to a user, group, or room at any time.
func (c *Client) PushMessage(ctx context.Context, to string, messages ...Message) error {
	if to == "" {
		return errors.New(errors.CodeInvalidInput, "recipient cannot be empty")
	}
	if err := validateMessages(messages); err != nil {
		return err
	}

	body := struct {
		To       string    `json:"to"`
		Messages []Message `json:"messages"`
	}{To: to, Messages: messages}

	return c.transport.Post(ctx, "/v2/bot/message/push", body, nil)
}

// Multicast sends the same messages to multiple users.
func (c *Client) Multicast(ctx context.Context, to []string, messages ...Message) error {
	if len(to) == 0 {
		return errors.New(errors.CodeInvalidInput, "recipient list cannot be empty")
	}
	if err := validateMessages(messages); err != nil {
		return err
	}

	body := struct {
		To       []string  `json:"to"`
		Messages []Message `json:"messages"`
	}{To: to, Messages: messages}

	return c.transport.Post(ctx, "/v2/bot/message/multicast", body, nil)
}

// GetProfile retrieves a user's profile. The user must have added the bot
// as a friend.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "user id cannot be empty")
	}

	var out Profile
	if err := c.transport.Get(ctx, "/v2/bot/profile/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// validateMessages enforces the per-send message limits.
func validateMessages(messages []Message) error {
	if len(messages) == 0 {
		return errors.New(errors.CodeInvalidInput, "at least one message is required")
	}
	if len(messages) > maxMessagesPerSend {
		return errors.Newf(errors.CodeInvalidInput, "%d messages exceed the limit of %d per send", len(messages), maxMessagesPerSend)
	}
	return nil
}
