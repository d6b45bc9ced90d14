package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sabhook/internal/config"
	"sabhook/internal/embed"
	"sabhook/internal/events"
	"sabhook/internal/logging"
	"sabhook/internal/notifications"
	"sabhook/internal/preflight"
	"sabhook/internal/textutil"
)

// runSend is the SABnzbd entry point: validate inputs, format, deliver once.
func runSend(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	runCtx := logging.WithCorrelationID(commandCtx(cmd), uuid.NewString())
	logger := logging.WithContext(runCtx, ctx.loggerValue())

	reportPreflight(logger, preflight.RunAll(cfg, ctx.configPath, ctx.scriptPath()))

	cwd, _ := os.Getwd()
	logger.Info("invocation",
		slog.String("user", currentUser()),
		slog.String("cwd", cwd),
		slog.Any("argv", logging.RedactArgs(os.Args)),
		slog.String("webhook", logging.MaskedLen(cfg.Discord.WebhookURL)),
	)

	if !cfg.HasWebhook() {
		logger.Error("no webhook configured",
			logging.Alert("set discord.webhook_url in the config file or export DISCORD_WEBHOOK_URL"),
		)
		return configurationError(notifications.ErrNotConfigured)
	}

	if len(args) < 3 {
		return inputError("not enough arguments; expected %s", usageLine)
	}

	kind := events.Normalize(args[0])
	runCtx = logging.WithEventKind(runCtx, string(kind))
	logger = logging.WithContext(runCtx, ctx.loggerValue())
	logger.Info("received notification", slog.String("type", string(kind)))

	doc := ctx.formatter(cfg).Format(args[0], args[1], args[2], textutil.SplitURLs(args[3:]))
	return deliver(runCtx, cmd, ctx, cfg, doc)
}

func deliver(runCtx context.Context, cmd *cobra.Command, ctx *commandContext, cfg *config.Config, doc embed.Document) error {
	outcome := ctx.deliverer(cfg, cmd.OutOrStdout()).Deliver(runCtx, notifications.Request{
		WebhookURL: cfg.Discord.WebhookURL,
		Username:   cfg.Discord.Username,
		AvatarURL:  cfg.Discord.AvatarURL,
		Embed:      doc,
		DryRun:     cfg.Debug,
	})
	if outcome.OK() {
		return nil
	}
	if hint := outcome.Hint(); hint != "" {
		logging.WithContext(runCtx, ctx.loggerValue()).Warn("webhook needs attention", logging.Alert(hint))
	}
	if outcome.Err != nil {
		return deliveryError(outcome.Err)
	}
	return deliveryError(fmt.Errorf("webhook %s", outcome))
}

func reportPreflight(logger *slog.Logger, results []preflight.Result) {
	for _, r := range preflight.Failed(results) {
		logger.Warn("preflight check failed",
			slog.String("check", r.Name),
			slog.String("detail", r.Detail),
		)
	}
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
