package slack

// Attachment is a legacy message attachment.
type Attachment struct {
	Fallback   string            `json:"fallback,omitempty"`
	Color      string            `json:"color,omitempty"`
	Pretext    string            `json:"pretext,omitempty"`
	AuthorName string            `json:"authorName,omitempty"`
	Title      string            `json:"title,omitempty"`
	TitleLink  string            `json:"titleLink,omitempty"`
	Text       string            `json:"text,omitempty"`
	ImageURL   string            `json:"imageUrl,omitempty"`
	ThumbURL   string            `json:"thumbUrl,omitempty"`
	Footer     string            `json:"footer,omitempty"`
	Fields     []AttachmentField `json:"fields,omitempty"`
	Ts         int64             `json:"ts,omitempty"`
}

// AttachmentField is a short key/value pair rendered inside an attachment.
type AttachmentField struct {
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short,omitempty"`
}

// PostOptions carries the optional chat.postMessage parameters.
type PostOptions struct {
	AsUser      bool         `json:"asUser,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	IconEmoji   string       `json:"iconEmoji,omitempty"`
	IconURL     string       `json:"iconUrl,omitempty"`
	LinkNames   bool         `json:"linkNames,omitempty"`
	ThreadTs    string       `json:"threadTs,omitempty"`
	Username    string       `json:"username,omitempty"`
}

// PostResponse is the acknowledgement returned by the chat methods.
type PostResponse struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
}

// User is a Slack workspace member.
type User struct {
	ID       string      `json:"id"`
	TeamID   string      `json:"teamId"`
	Name     string      `json:"name"`
	RealName string      `json:"realName"`
	Deleted  bool        `json:"deleted"`
	IsBot    bool        `json:"isBot"`
	IsAdmin  bool        `json:"isAdmin"`
	Tz       string      `json:"tz"`
	Profile  UserProfile `json:"profile"`
}

// UserProfile is the profile block nested inside a User.
type UserProfile struct {
	RealName    string `json:"realName"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Image72     string `json:"image_72"`
	StatusText  string `json:"statusText"`
	StatusEmoji string `json:"statusEmoji"`
}

// Channel is a conversation the token can see.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsChannel  bool   `json:"isChannel"`
	IsPrivate  bool   `json:"isPrivate"`
	IsArchived bool   `json:"isArchived"`
	Created    int64  `json:"created"`
	Creator    string `json:"creator"`
	NumMembers int    `json:"numMembers"`
}
