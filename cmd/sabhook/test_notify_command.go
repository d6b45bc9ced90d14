package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sabhook/internal/events"
	"sabhook/internal/logging"
	"sabhook/internal/notifications"
)

const (
	testNotifyTitle   = "sabhook test notification"
	testNotifyMessage = "If you can read this, SABnzbd notifications will reach this channel.\nCategory: test\nStatus: OK"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification to the configured webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.HasWebhook() {
				return configurationError(notifications.ErrNotConfigured)
			}

			runCtx := logging.WithCorrelationID(commandCtx(cmd), uuid.NewString())
			runCtx = logging.WithEventKind(runCtx, string(events.KindOther))

			doc := ctx.formatter(cfg).Format(string(events.KindOther), testNotifyTitle, testNotifyMessage, nil)
			if err := deliver(runCtx, cmd, ctx, cfg, doc); err != nil {
				return err
			}
			if !cfg.Debug {
				fmt.Fprintln(cmd.OutOrStdout(), "Test notification sent")
			}
			return nil
		},
	}
}
