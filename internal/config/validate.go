package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validate ensures the configuration is usable. An empty webhook is allowed
// here so that `config validate` and dry runs work before the webhook is
// provisioned; the send path reports it separately.
func (c *Config) Validate() error {
	if err := c.validateDiscord(); err != nil {
		return err
	}
	if err := c.validateEmbed(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDiscord() error {
	if c.Discord.WebhookURL != "" {
		if err := validateHTTPURL(c.Discord.WebhookURL); err != nil {
			// Never echo the webhook itself.
			return fmt.Errorf("discord.webhook_url: %w", err)
		}
	}
	if c.Discord.AvatarURL != "" {
		if err := validateHTTPURL(c.Discord.AvatarURL); err != nil {
			return fmt.Errorf("discord.avatar_url %q: %w", c.Discord.AvatarURL, err)
		}
	}
	if utf8.RuneCountInString(c.Discord.Username) > maxUsernameLength {
		return fmt.Errorf("discord.username must be at most %d characters", maxUsernameLength)
	}
	if c.Discord.RequestTimeout > maxRequestTimeout {
		return fmt.Errorf("discord.request_timeout must be between 1 and %d seconds", maxRequestTimeout)
	}
	return nil
}

func (c *Config) validateEmbed() error {
	if err := validateHTTPURL(c.Embed.IconURL); err != nil {
		return fmt.Errorf("embed.icon_url %q: %w", c.Embed.IconURL, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}

func validateHTTPURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return errors.New("not a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
