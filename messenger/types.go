package messenger

// Recipient identifies the target of a message.
type Recipient struct {
	ID string `json:"id"`
}

// Message is the message payload of a send operation. Exactly one of Text
// or Attachment should be set.
type Message struct {
	Text         string       `json:"text,omitempty"`
	Attachment   *Attachment  `json:"attachment,omitempty"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Attachment is a media or template attachment.
type Attachment struct {
	// Type is one of "image", "audio", "video", "file", or "template".
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload carries the attachment content. Media attachments use
// URL; template attachments use TemplateType and the matching fields.
type AttachmentPayload struct {
	URL        string `json:"url,omitempty"`
	IsReusable bool   `json:"isReusable,omitempty"`

	TemplateType string            `json:"templateType,omitempty"`
	Text         string            `json:"text,omitempty"`
	Elements     []TemplateElement `json:"elements,omitempty"`
	Buttons      []Button          `json:"buttons,omitempty"`
}

// TemplateElement is one card of a generic template.
type TemplateElement struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// Button is a template or quick-reply button.
type Button struct {
	// Type is one of "web_url", "postback", or "phone_number".
	Type    string `json:"type"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Payload string `json:"payload,omitempty"`
}

// QuickReply is a suggested response shown with a message.
type QuickReply struct {
	// ContentType is one of "text", "user_phone_number", or "user_email".
	ContentType string `json:"contentType"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// SendOptions tunes message delivery.
type SendOptions struct {
	// MessagingType is one of "RESPONSE", "UPDATE", or "MESSAGE_TAG".
	// Defaults to "UPDATE".
	MessagingType string `json:"messagingType,omitempty"`

	// Tag is required when MessagingType is "MESSAGE_TAG".
	Tag string `json:"tag,omitempty"`

	// NotificationType is one of "REGULAR", "SILENT_PUSH", or "NO_PUSH".
	NotificationType string `json:"notificationType,omitempty"`
}

// SendResponse is the outcome of a successful send operation.
type SendResponse struct {
	RecipientID string `json:"recipientId"`
	MessageID   string `json:"messageId"`
}

// UserProfile holds the profile fields of a Messenger user.
type UserProfile struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
	Locale     string `json:"locale,omitempty"`
	Timezone   int    `json:"timezone,omitempty"`
	Gender     string `json:"gender,omitempty"`
}

// Sender actions for SendSenderAction.
const (
	// SenderActionTypingOn shows the typing indicator.
	SenderActionTypingOn = "typing_on"

	// SenderActionTypingOff hides the typing indicator.
	SenderActionTypingOff = "typing_off"

	// SenderActionMarkSeen marks the last message as read.
	SenderActionMarkSeen = "mark_seen"
)

// Messaging types.
const (
	// MessagingTypeResponse marks a message sent in reply to a received one.
	MessagingTypeResponse = "RESPONSE"

	// MessagingTypeUpdate marks a proactive message. This is the default.
	MessagingTypeUpdate = "UPDATE"

	// MessagingTypeTag marks a tagged message sent outside the standard window.
	MessagingTypeTag = "MESSAGE_TAG"
)
