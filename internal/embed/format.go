package embed

import (
	"strings"
	"time"

	"sabhook/internal/events"
)

const (
	FieldCategory       = "Category"
	FieldDownloadStatus = "Download Status"

	// TimestampLayout is ISO-8601 in UTC without an offset suffix.
	TimestampLayout = "2006-01-02T15:04:05.000000"

	DefaultSourceName = "SABnzbd"
	DefaultIconURL    = "https://github.com/sabnzbd.png"
	DefaultFooter     = "SABnzbd Notification"
)

// Branding holds the fixed source identity stamped on every embed.
type Branding struct {
	SourceName string
	IconURL    string
	Footer     string
}

// DefaultBranding returns the SABnzbd identity.
func DefaultBranding() Branding {
	return Branding{
		SourceName: DefaultSourceName,
		IconURL:    DefaultIconURL,
		Footer:     DefaultFooter,
	}
}

// Formatter builds embeds. The zero value uses DefaultBranding and the wall
// clock.
type Formatter struct {
	Branding Branding
	Now      func() time.Time
}

// NewFormatter returns a formatter using branding, filling blank entries
// from DefaultBranding.
func NewFormatter(branding Branding) *Formatter {
	def := DefaultBranding()
	if strings.TrimSpace(branding.SourceName) == "" {
		branding.SourceName = def.SourceName
	}
	if strings.TrimSpace(branding.IconURL) == "" {
		branding.IconURL = def.IconURL
	}
	if strings.TrimSpace(branding.Footer) == "" {
		branding.Footer = def.Footer
	}
	return &Formatter{Branding: branding, Now: time.Now}
}

// Format builds a Document with the default formatter.
func Format(kind, title, message string, urls []string) Document {
	return NewFormatter(Branding{}).Format(kind, title, message, urls)
}

// Format converts a SABnzbd event into an embed. It never fails: unknown
// kinds fall back to a synthesized presentation.
func (f *Formatter) Format(kind, title, message string, urls []string) Document {
	branding := f.Branding
	if branding == (Branding{}) {
		branding = DefaultBranding()
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	kindName := string(events.Normalize(kind))
	pres := events.Lookup(events.Kind(kindName))

	description, parsed := ExtractFields(message)

	category := kindName
	if v, ok := parsed[KeyCategory]; ok && v != "" {
		category = v
	}
	status := kindName
	if v, ok := parsed[KeyDownloadStatus]; ok && v != "" {
		status = v
	} else if v, ok := parsed[KeyStatus]; ok && v != "" {
		status = v
	}

	if description == "" {
		description = title
	}

	color := pres.Color
	if color == 0 {
		color = ReferenceColor
	}

	doc := Document{
		Title:       branding.SourceName + ": " + pres.Emoji + " " + pres.Label,
		Description: description,
		Color:       color,
		Timestamp:   now().UTC().Format(TimestampLayout),
		Author: Author{
			Name:    branding.SourceName,
			IconURL: branding.IconURL,
		},
		Fields: []Field{
			{Name: FieldCategory, Value: events.CircleFor(pres.Color) + " " + category, Inline: true},
			{Name: FieldDownloadStatus, Value: pres.Emoji + " " + status, Inline: true},
		},
		Footer: Footer{Text: branding.Footer},
	}
	if len(urls) > 0 {
		doc.Thumbnail = &Thumbnail{URL: urls[0]}
	}
	doc.clamp()
	return doc
}
