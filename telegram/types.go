package telegram

// User is a Telegram user or bot.
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"isBot"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Chat is the conversation a message belongs to.
type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Message is a message sent to or received from a chat.
type Message struct {
	MessageID int64       `json:"messageId"`
	From      *User       `json:"from,omitempty"`
	Chat      Chat        `json:"chat"`
	Date      int64       `json:"date"`
	Text      string      `json:"text,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

// PhotoSize is one rendition of a photo.
type PhotoSize struct {
	FileID       string `json:"fileId"`
	FileUniqueID string `json:"fileUniqueId"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"fileSize,omitempty"`
}

// Update is one item from getUpdates.
type Update struct {
	UpdateID      int64    `json:"updateId"`
	Message       *Message `json:"message,omitempty"`
	EditedMessage *Message `json:"editedMessage,omitempty"`
	ChannelPost   *Message `json:"channelPost,omitempty"`
}

// WebhookInfo is the current webhook state of the bot.
type WebhookInfo struct {
	URL                  string `json:"url"`
	HasCustomCertificate bool   `json:"hasCustomCertificate"`
	PendingUpdateCount   int    `json:"pendingUpdateCount"`
	LastErrorDate        int64  `json:"lastErrorDate,omitempty"`
	LastErrorMessage     string `json:"lastErrorMessage,omitempty"`
	MaxConnections       int    `json:"maxConnections,omitempty"`
}

// SendMessageOptions carries the optional sendMessage parameters.
type SendMessageOptions struct {
	ParseMode                string `json:"parseMode,omitempty"`
	DisableWebPagePreview    bool   `json:"disableWebPagePreview,omitempty"`
	DisableNotification      bool   `json:"disableNotification,omitempty"`
	ReplyToMessageID         int64  `json:"replyToMessageId,omitempty"`
	AllowSendingWithoutReply bool   `json:"allowSendingWithoutReply,omitempty"`
}

// SendPhotoOptions carries the optional sendPhoto parameters.
type SendPhotoOptions struct {
	Caption             string `json:"caption,omitempty"`
	ParseMode           string `json:"parseMode,omitempty"`
	DisableNotification bool   `json:"disableNotification,omitempty"`
	ReplyToMessageID    int64  `json:"replyToMessageId,omitempty"`
}

// GetUpdatesOptions carries the optional getUpdates parameters, encoded as
// query string values.
type GetUpdatesOptions struct {
	Offset  int64 `url:"offset,omitempty"`
	Limit   int   `url:"limit,omitempty"`
	Timeout int   `url:"timeout,omitempty"`
}

// SetWebhookOptions carries the optional setWebhook parameters.
type SetWebhookOptions struct {
	MaxConnections     int  `json:"maxConnections,omitempty"`
	DropPendingUpdates bool `json:"dropPendingUpdates,omitempty"`
}
