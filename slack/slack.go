package slack

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Yoctol/messaging-apis/errors"
)

// PostMessage sends a message to a channel, for example "#general" or a
// channel ID. Optional parameters are supplied through opts; a nil opts
// sends a plain text message.
func (c *Client) PostMessage(ctx context.Context, channel, text string, opts *PostOptions) (*PostResponse, error) {
	if channel == "" {
		return nil, errors.New(errors.CodeInvalidInput, "channel cannot be empty")
	}

	body := postBody{Channel: channel, Text: text}
	if opts != nil {
		body.PostOptions = *opts
	}

	var res PostResponse
	if err := c.transport.Post(ctx, "/chat.postMessage", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PostEphemeral sends a message visible only to user within channel.
func (c *Client) PostEphemeral(ctx context.Context, channel, user, text string, opts *PostOptions) (*PostResponse, error) {
	if channel == "" {
		return nil, errors.New(errors.CodeInvalidInput, "channel cannot be empty")
	}
	if user == "" {
		return nil, errors.New(errors.CodeInvalidInput, "user cannot be empty")
	}

	body := postBody{Channel: channel, User: user, Text: text}
	if opts != nil {
		body.PostOptions = *opts
	}

	var res PostResponse
	if err := c.transport.Post(ctx, "/chat.postEphemeral", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// postBody is the wire shape shared by the chat methods.
type postBody struct {
	Channel string `json:"channel"`
	User    string `json:"user,omitempty"`
	Text    string `json:"text"`
	PostOptions
}

// GetUserInfo fetches a workspace member by user ID.
func (c *Client) GetUserInfo(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "user id cannot be empty")
	}

	var res struct {
		OK   bool `json:"ok"`
		User User `json:"user"`
	}
	query := url.Values{"user": {userID}}
	if err := c.transport.Get(ctx, "/users.info", query, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// GetUserList fetches one page of workspace members. cursor is empty for
// the first page; the returned cursor is empty when no pages remain.
func (c *Client) GetUserList(ctx context.Context, cursor string, limit int) ([]User, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var res struct {
		OK               bool   `json:"ok"`
		Members          []User `json:"members"`
		ResponseMetadata struct {
			NextCursor string `json:"nextCursor"`
		} `json:"responseMetadata"`
	}
	if err := c.transport.Get(ctx, "/users.list", query, &res); err != nil {
		return nil, "", err
	}
	return res.Members, res.ResponseMetadata.NextCursor, nil
}

// GetAllUserList walks the cursor pagination of GetUserList and returns
// every workspace member.
func (c *Client) GetAllUserList(ctx context.Context) ([]User, error) {
	var all []User
	cursor := ""
	for {
		members, next, err := c.GetUserList(ctx, cursor, 0)
		if err != nil {
			return nil, err
		}
		all = append(all, members...)
		if next == "" {
			return all, nil
		}
		cursor = next
	}
}

// GetChannelInfo fetches a conversation by channel ID.
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) (*Channel, error) {
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "channel id cannot be empty")
	}

	var res struct {
		OK      bool    `json:"ok"`
		Channel Channel `json:"channel"`
	}
	query := url.Values{"channel": {channelID}}
	if err := c.transport.Get(ctx, "/conversations.info", query, &res); err != nil {
		return nil, err
	}
	return &res.Channel, nil
}
