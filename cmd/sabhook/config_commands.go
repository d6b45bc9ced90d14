package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sabhook/internal/config"
	"sabhook/internal/logging"
	"sabhook/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return configurationError(fmt.Errorf("determine default config path: %w", err))
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return configurationError(fmt.Errorf("resolve config path: %w", err))
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set discord.webhook_url (or export DISCORD_WEBHOOK_URL) before pointing SABnzbd at sabhook.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and run preflight checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults and environment were used")
			}
			fmt.Fprintf(out, "Webhook: %s\n", logging.MaskedLen(cfg.Discord.WebhookURL))

			results := preflight.RunAll(cfg, ctx.configPath, ctx.scriptPath())
			if len(results) > 0 {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					status := "ok"
					if !r.Passed {
						status = "warn"
					}
					rows = append(rows, []string{r.Name, status, r.Detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			}

			if !cfg.HasWebhook() {
				fmt.Fprintln(out, "Configuration valid, but no webhook is set; notifications will fail until one is configured")
				return nil
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
