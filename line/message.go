package line

// Message is one LINE message object. The Type field decides which of the
// remaining fields the platform reads; use the constructors instead of
// filling it by hand.
type Message struct {
	Type string `json:"type"`

	// Text message.
	Text string `json:"text,omitempty"`

	// Image message.
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string `json:"previewImageUrl,omitempty"`

	// Sticker message.
	PackageID string `json:"packageId,omitempty"`
	StickerID string `json:"stickerId,omitempty"`
}

// NewTextMessage builds a text message.
func NewTextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

// NewImageMessage builds an image message. previewURL may equal
// originalURL when no dedicated preview exists.
func NewImageMessage(originalURL, previewURL string) Message {
	return Message{
		Type:               "image",
		OriginalContentURL: originalURL,
		PreviewImageURL:    previewURL,
	}
}

// NewStickerMessage builds a sticker message from a sticker set package
// and a sticker within it.
func NewStickerMessage(packageID, stickerID string) Message {
	return Message{
		Type:      "sticker",
		PackageID: packageID,
		StickerID: stickerID,
	}
}

// Profile holds a LINE user's profile.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
}
