package embed

import "sabhook/internal/textutil"

// Discord rejects embeds that exceed these rune counts.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFieldValueLength  = 1024
	MaxFooterLength      = 2048
	MaxAuthorNameLength  = 256
)

func (d *Document) clamp() {
	d.Title = textutil.Truncate(d.Title, MaxTitleLength)
	d.Description = textutil.Truncate(d.Description, MaxDescriptionLength)
	d.Author.Name = textutil.Truncate(d.Author.Name, MaxAuthorNameLength)
	d.Footer.Text = textutil.Truncate(d.Footer.Text, MaxFooterLength)
	for i := range d.Fields {
		d.Fields[i].Value = textutil.Truncate(d.Fields[i].Value, MaxFieldValueLength)
	}
}
