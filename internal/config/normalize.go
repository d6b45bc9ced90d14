package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeDebug(); err != nil {
		return err
	}
	c.normalizeDiscord()
	c.normalizeEmbed()
	return c.normalizeLogging()
}

func (c *Config) normalizeDebug() error {
	value, ok := os.LookupEnv("SABHOOK_DEBUG")
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("SABHOOK_DEBUG: invalid boolean %q", value)
	}
	c.Debug = parsed
	return nil
}

func (c *Config) normalizeDiscord() {
	c.Discord.WebhookURL = strings.TrimSpace(c.Discord.WebhookURL)
	if c.Discord.WebhookURL == "" {
		if value, ok := os.LookupEnv("DISCORD_WEBHOOK_URL"); ok {
			c.Discord.WebhookURL = strings.TrimSpace(value)
		}
	}
	c.Discord.Username = strings.TrimSpace(c.Discord.Username)
	if value, ok := os.LookupEnv("DISCORD_USERNAME"); ok && c.Discord.Username == "" {
		c.Discord.Username = strings.TrimSpace(value)
	}
	c.Discord.AvatarURL = strings.TrimSpace(c.Discord.AvatarURL)
	if value, ok := os.LookupEnv("DISCORD_AVATAR_URL"); ok && c.Discord.AvatarURL == "" {
		c.Discord.AvatarURL = strings.TrimSpace(value)
	}
	if c.Discord.RequestTimeout <= 0 {
		c.Discord.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeEmbed() {
	c.Embed.SourceName = strings.TrimSpace(c.Embed.SourceName)
	if c.Embed.SourceName == "" {
		c.Embed.SourceName = defaultSourceName
	}
	c.Embed.IconURL = strings.TrimSpace(c.Embed.IconURL)
	if c.Embed.IconURL == "" {
		c.Embed.IconURL = defaultIconURL
	}
	c.Embed.Footer = strings.TrimSpace(c.Embed.Footer)
	if c.Embed.Footer == "" {
		c.Embed.Footer = defaultFooter
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
