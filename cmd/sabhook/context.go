package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"sabhook/internal/config"
	"sabhook/internal/embed"
	"sabhook/internal/logging"
	"sabhook/internal/notifications"
)

type commandContext struct {
	configFlag  *string
	webhookFlag *string
	scriptFlag  *string
	debugFlag   *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, webhookFlag, scriptFlag *string, debugFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		webhookFlag: webhookFlag,
		scriptFlag:  scriptFlag,
		debugFlag:   debugFlag,
	}
}

// ensureConfig loads configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = configurationError(err)
			return
		}
		if webhook := flagValue(c.webhookFlag); webhook != "" {
			cfg.Discord.WebhookURL = webhook
			if err := cfg.Validate(); err != nil {
				c.configErr = configurationError(fmt.Errorf("--webhook: %w", err))
				return
			}
		}
		if c.debugFlag != nil && *c.debugFlag {
			cfg.Debug = true
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loggerValue builds the diagnostic logger from the loaded configuration,
// falling back to console defaults when configuration is unavailable.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.New(logging.Options{Level: "info", Format: "console"})
			logger.Warn("logging configuration unusable; using console defaults", logging.Error(err))
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) scriptPath() string {
	return flagValue(c.scriptFlag)
}

func (c *commandContext) formatter(cfg *config.Config) *embed.Formatter {
	return embed.NewFormatter(embed.Branding{
		SourceName: cfg.Embed.SourceName,
		IconURL:    cfg.Embed.IconURL,
		Footer:     cfg.Embed.Footer,
	})
}

func (c *commandContext) deliverer(cfg *config.Config, out io.Writer) *notifications.Deliverer {
	return notifications.NewDeliverer(cfg, c.loggerValue(), notifications.WithDryRunWriter(out))
}

func flagValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
