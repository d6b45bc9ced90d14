package logging_test

import (
	"strings"
	"testing"

	"sabhook/internal/logging"
)

func TestMaskedLen(t *testing.T) {
	if got := logging.MaskedLen(""); got != "not set" {
		t.Fatalf("MaskedLen(\"\") = %q", got)
	}
	if got := logging.MaskedLen("abcdef"); got != "length=6" {
		t.Fatalf("MaskedLen = %q, want length=6", got)
	}
}

func TestRedactArgs(t *testing.T) {
	args := []string{
		"/usr/local/bin/sabhook",
		"--webhook",
		"https://discord.com/api/webhooks/1/abc",
		"https://DISCORDAPP.com/api/webhooks/2/def",
		"complete",
		"https://example.com/poster.jpg",
	}
	got := logging.RedactArgs(args)
	want := []string{
		"/usr/local/bin/sabhook",
		"--webhook",
		logging.WebhookPlaceholder,
		logging.WebhookPlaceholder,
		"complete",
		"https://example.com/poster.jpg",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("RedactArgs = %v, want %v", got, want)
	}
	if args[2] == logging.WebhookPlaceholder {
		t.Fatal("RedactArgs mutated its input")
	}
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "nothing to see", "nothing to see"},
		{
			"quoted in transport error",
			`Post "https://discord.com/api/webhooks/1/abc": dial tcp: connection refused`,
			`Post "<WEBHOOK_REDACTED>": dial tcp: connection refused`,
		},
		{
			"flag form",
			"--webhook=https://discordapp.com/api/webhooks/9/zz",
			"<WEBHOOK_REDACTED>",
		},
		{"other discord url", "https://discord.com/channels/1", "https://discord.com/channels/1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logging.RedactURL(tt.in); got != tt.want {
				t.Fatalf("RedactURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
