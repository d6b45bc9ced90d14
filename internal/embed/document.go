package embed

// Document is a single Discord embed object.
type Document struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       int        `json:"color"`
	Timestamp   string     `json:"timestamp"`
	Author      Author     `json:"author"`
	Fields      []Field    `json:"fields"`
	Footer      Footer     `json:"footer"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
}

// Author identifies the notification source.
type Author struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

// Field is a labeled embed value.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer holds the embed footer text.
type Footer struct {
	Text string `json:"text"`
}

// Thumbnail references an image shown beside the embed.
type Thumbnail struct {
	URL string `json:"url"`
}

// Payload is the JSON body accepted by a Discord webhook.
type Payload struct {
	Username  string     `json:"username,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Embeds    []Document `json:"embeds"`
}

// NewPayload wraps doc in a webhook payload. Empty username or avatarURL
// are omitted from the encoded JSON.
func NewPayload(doc Document, username, avatarURL string) Payload {
	return Payload{
		Username:  username,
		AvatarURL: avatarURL,
		Embeds:    []Document{doc},
	}
}

// Field returns the value of the named field and whether it exists.
func (d Document) Field(name string) (string, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
