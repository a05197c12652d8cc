package messenger

import (
	"context"

	"github.com/Yoctol/messaging-apis/errors"
)

// sendRequest is the body of a Send API call.
type sendRequest struct {
	MessagingType    string    `json:"messagingType,omitempty"`
	Recipient        Recipient `json:"recipient"`
	Message          *Message  `json:"message,omitempty"`
	SenderAction     string    `json:"senderAction,omitempty"`
	Tag              string    `json:"tag,omitempty"`
	NotificationType string    `json:"notificationType,omitempty"`
}

// SendMessage delivers a message to a user. opts may be nil, in which case
// the messaging type defaults to "UPDATE".
func (c *Client) SendMessage(ctx context.Context, recipientID string, message Message, opts *SendOptions) (*SendResponse, error) {
	if recipientID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "recipient id cannot be empty")
	}

	req := sendRequest{
		MessagingType: MessagingTypeUpdate,
		Recipient:     Recipient{ID: recipientID},
		Message:       &message,
	}
	if opts != nil {
		if opts.MessagingType != "" {
			req.MessagingType = opts.MessagingType
		}
		req.Tag = opts.Tag
		req.NotificationType = opts.NotificationType
	}

	var out SendResponse
	if err := c.transport.Post(ctx, "/me/messages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendText delivers a plain text message.
func (c *Client) SendText(ctx context.Context, recipientID, text string, opts *SendOptions) (*SendResponse, error) {
	return c.SendMessage(ctx, recipientID, Message{Text: text}, opts)
}

// SendAttachment delivers a prepared attachment.
func (c *Client) SendAttachment(ctx context.Context, recipientID string, attachment Attachment, opts *SendOptions) (*SendResponse, error) {
	return c.SendMessage(ctx, recipientID, Message{Attachment: &attachment}, opts)
}

// The media send surface is a fixed table of named methods, one per
// attachment kind the Send API accepts.

// SendImage delivers an image by URL.
func (c *Client) SendImage(ctx context.Context, recipientID, url string, opts *SendOptions) (*SendResponse, error) {
	return c.sendMedia(ctx, recipientID, "image", url, opts)
}

// SendAudio delivers an audio clip by URL.
func (c *Client) SendAudio(ctx context.Context, recipientID, url string, opts *SendOptions) (*SendResponse, error) {
	return c.sendMedia(ctx, recipientID, "audio", url, opts)
}

// SendVideo delivers a video by URL.
func (c *Client) SendVideo(ctx context.Context, recipientID, url string, opts *SendOptions) (*SendResponse, error) {
	return c.sendMedia(ctx, recipientID, "video", url, opts)
}

// SendFile delivers a file by URL.
func (c *Client) SendFile(ctx context.Context, recipientID, url string, opts *SendOptions) (*SendResponse, error) {
	return c.sendMedia(ctx, recipientID, "file", url, opts)
}

func (c *Client) sendMedia(ctx context.Context, recipientID, kind, url string, opts *SendOptions) (*SendResponse, error) {
	return c.SendAttachment(ctx, recipientID, Attachment{
		Type:    kind,
		Payload: AttachmentPayload{URL: url},
	}, opts)
}

// SendTemplate delivers a template attachment with the given payload.
func (c *Client) SendTemplate(ctx context.Context, recipientID string, payload AttachmentPayload, opts *SendOptions) (*SendResponse, error) {
	return c.SendAttachment(ctx, recipientID, Attachment{
		Type:    "template",
		Payload: payload,
	}, opts)
}

// SendGenericTemplate delivers a generic (carousel) template.
func (c *Client) SendGenericTemplate(ctx context.Context, recipientID string, elements []TemplateElement, opts *SendOptions) (*SendResponse, error) {
	return c.SendTemplate(ctx, recipientID, AttachmentPayload{
		TemplateType: "generic",
		Elements:     elements,
	}, opts)
}

// SendButtonTemplate delivers a button template.
func (c *Client) SendButtonTemplate(ctx context.Context, recipientID, text string, buttons []Button, opts *SendOptions) (*SendResponse, error) {
	return c.SendTemplate(ctx, recipientID, AttachmentPayload{
		TemplateType: "button",
		Text:         text,
		Buttons:      buttons,
	}, opts)
}

// SendSenderAction sets the sender action for a conversation.
func (c *Client) SendSenderAction(ctx context.Context, recipientID, action string) error {
	if recipientID == "" {
		return errors.New(errors.CodeInvalidInput, "recipient id cannot be empty")
	}

	req := sendRequest{
		Recipient:    Recipient{ID: recipientID},
		SenderAction: action,
	}
	return c.transport.Post(ctx, "/me/messages", req, nil)
}

// TypingOn shows the typing indicator to the user.
func (c *Client) TypingOn(ctx context.Context, recipientID string) error {
	return c.SendSenderAction(ctx, recipientID, SenderActionTypingOn)
}

// TypingOff hides the typing indicator.
func (c *Client) TypingOff(ctx context.Context, recipientID string) error {
	return c.SendSenderAction(ctx, recipientID, SenderActionTypingOff)
}

// MarkSeen marks the user's last message as read.
func (c *Client) MarkSeen(ctx context.Context, recipientID string) error {
	return c.SendSenderAction(ctx, recipientID, SenderActionMarkSeen)
}
