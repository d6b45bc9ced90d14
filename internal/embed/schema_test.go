package embed_test

import (
	"errors"
	"strings"
	"testing"

	"sabhook/internal/embed"
	"sabhook/internal/events"
)

func TestFormattedPayloadsPassSchema(t *testing.T) {
	f := newTestFormatter()
	kinds := append(events.Kinds(), "mystery")
	for _, kind := range kinds {
		doc := f.Format(string(kind), "Title", "Category: tv\nbody", []string{"https://example.com/a.png"})
		if err := embed.Validate(embed.NewPayload(doc, "SABnzbd", embed.DefaultIconURL)); err != nil {
			t.Fatalf("payload for %s failed validation: %v", kind, err)
		}
		if err := embed.Validate(embed.NewPayload(doc, "", "")); err != nil {
			t.Fatalf("payload for %s without identity failed validation: %v", kind, err)
		}
	}
}

func TestValidateRejectsOutOfRangeColor(t *testing.T) {
	doc := newTestFormatter().Format("complete", "T", "m", nil)
	doc.Color = 0x1000000
	err := embed.Validate(embed.NewPayload(doc, "", ""))
	if !errors.Is(err, embed.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
	if !strings.Contains(err.Error(), "color") {
		t.Fatalf("expected color violation in %q", err)
	}
}

func TestValidateRejectsEmptyEmbeds(t *testing.T) {
	err := embed.Validate(embed.Payload{Embeds: []embed.Document{}})
	if !errors.Is(err, embed.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}
