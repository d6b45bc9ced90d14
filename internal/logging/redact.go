package logging

import (
	"regexp"
	"strconv"
	"strings"
)

// WebhookPlaceholder replaces webhook URLs in logged argv and messages.
const WebhookPlaceholder = "<WEBHOOK_REDACTED>"

var webhookMarkers = []string{
	"discord.com/api/webhooks",
	"discordapp.com/api/webhooks",
}

var webhookPattern = regexp.MustCompile(`(?i)(?:https?://)?[^\s"'<>]*discord(?:app)?\.com/api/webhooks[^\s"'<>]*`)

// MaskedLen describes a secret without revealing it.
func MaskedLen(secret string) string {
	if secret == "" {
		return "not set"
	}
	return "length=" + strconv.Itoa(len(secret))
}

// IsWebhookURL reports whether value contains a Discord webhook endpoint.
func IsWebhookURL(value string) bool {
	lower := strings.ToLower(value)
	for _, marker := range webhookMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// RedactArgs returns a copy of args with every webhook-bearing element
// replaced by WebhookPlaceholder.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if IsWebhookURL(arg) {
			out[i] = WebhookPlaceholder
			continue
		}
		out[i] = arg
	}
	return out
}

// RedactURL masks webhook-shaped substrings inside free text, such as the
// error strings produced by net/http which embed the request URL.
func RedactURL(text string) string {
	if !IsWebhookURL(text) {
		return text
	}
	return webhookPattern.ReplaceAllString(text, WebhookPlaceholder)
}

// redactSecrets applies RedactURL and then masks each literal secret.
func redactSecrets(text string, secrets []string) string {
	text = RedactURL(text)
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		text = strings.ReplaceAll(text, secret, WebhookPlaceholder)
	}
	return text
}
