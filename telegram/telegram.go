package telegram

import (
	"context"

	"github.com/google/go-querystring/query"

	"github.com/Yoctol/messaging-apis/errors"
)

// GetMe returns basic information about the bot.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var res struct {
		OK     bool `json:"ok"`
		Result User `json:"result"`
	}
	if err := c.transport.Get(ctx, "/getMe", nil, &res); err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// SendMessage sends a text message to chatID, which is a numeric chat ID or
// a channel username such as "@channelusername". A nil opts sends a plain
// text message.
func (c *Client) SendMessage(ctx context.Context, chatID, text string, opts *SendMessageOptions) (*Message, error) {
	if chatID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "chat id cannot be empty")
	}

	body := struct {
		ChatID string `json:"chatId"`
		Text   string `json:"text"`
		SendMessageOptions
	}{ChatID: chatID, Text: text}
	if opts != nil {
		body.SendMessageOptions = *opts
	}

	var res struct {
		OK     bool    `json:"ok"`
		Result Message `json:"result"`
	}
	if err := c.transport.Post(ctx, "/sendMessage", body, &res); err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// ForwardMessage forwards messageID from fromChatID to chatID.
func (c *Client) ForwardMessage(ctx context.Context, chatID, fromChatID string, messageID int64) (*Message, error) {
	if chatID == "" || fromChatID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "chat id cannot be empty")
	}

	body := struct {
		ChatID     string `json:"chatId"`
		FromChatID string `json:"fromChatId"`
		MessageID  int64  `json:"messageId"`
	}{ChatID: chatID, FromChatID: fromChatID, MessageID: messageID}

	var res struct {
		OK     bool    `json:"ok"`
		Result Message `json:"result"`
	}
	if err := c.transport.Post(ctx, "/forwardMessage", body, &res); err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// SendPhoto sends a photo by URL or by a file ID already known to Telegram.
func (c *Client) SendPhoto(ctx context.Context, chatID, photo string, opts *SendPhotoOptions) (*Message, error) {
	if chatID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "chat id cannot be empty")
	}

	body := struct {
		ChatID string `json:"chatId"`
		Photo  string `json:"photo"`
		SendPhotoOptions
	}{ChatID: chatID, Photo: photo}
	if opts != nil {
		body.SendPhotoOptions = *opts
	}

	var res struct {
		OK     bool    `json:"ok"`
		Result Message `json:"result"`
	}
	if err := c.transport.Post(ctx, "/sendPhoto", body, &res); err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// GetUpdates polls for incoming updates. A nil opts fetches from the
// beginning with the server defaults.
func (c *Client) GetUpdates(ctx context.Context, opts *GetUpdatesOptions) ([]Update, error) {
	if opts == nil {
		opts = &GetUpdatesOptions{}
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "encoding update options")
	}

	var res struct {
		OK     bool     `json:"ok"`
		Result []Update `json:"result"`
	}
	if err := c.transport.Get(ctx, "/getUpdates", values, &res); err != nil {
		return nil, err
	}
	return res.Result, nil
}

// GetWebhookInfo returns the current webhook state.
func (c *Client) GetWebhookInfo(ctx context.Context) (*WebhookInfo, error) {
	var res struct {
		OK     bool        `json:"ok"`
		Result WebhookInfo `json:"result"`
	}
	if err := c.transport.Get(ctx, "/getWebhookInfo", nil, &res); err != nil {
		return nil, err
	}
	return &res.Result, nil
}

// SetWebhook points the bot's webhook at url. A nil opts uses the server
// defaults.
func (c *Client) SetWebhook(ctx context.Context, url string, opts *SetWebhookOptions) error {
	if url == "" {
		return errors.New(errors.CodeInvalidInput, "webhook url cannot be empty")
	}

	body := struct {
		URL string `json:"url"`
		SetWebhookOptions
	}{URL: url}
	if opts != nil {
		body.SetWebhookOptions = *opts
	}

	return c.transport.Post(ctx, "/setWebhook", body, nil)
}

// DeleteWebhook removes the webhook and switches the bot back to polling.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.transport.Post(ctx, "/deleteWebhook", nil, nil)
}
