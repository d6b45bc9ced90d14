package main

import (
	"github.com/spf13/cobra"
)

const usageLine = "sabhook [flags] <type> <title> <message> [url[,url...]...]"

func newRootCommand() *cobra.Command {
	var configFlag string
	var webhookFlag string
	var scriptFlag string
	var debugFlag bool

	ctx := newCommandContext(&configFlag, &webhookFlag, &scriptFlag, &debugFlag)

	rootCmd := &cobra.Command{
		Use:   usageLine,
		Short: "Post SABnzbd notifications to a Discord webhook",
		Long: "sabhook is a SABnzbd notification script. SABnzbd calls it with the\n" +
			"notification type, title, message, and optional URLs; sabhook formats a\n" +
			"Discord embed and posts it to the configured webhook once.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, ctx, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Messages may begin with "-"; stop flag parsing at the first positional.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError("%v", err)
	})

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&webhookFlag, "webhook", "", "Discord webhook URL (overrides configuration)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print the payload instead of sending it")
	rootCmd.PersistentFlags().StringVar(&scriptFlag, "script", "", "Path of the SABnzbd wrapper script to check for CRLF line endings")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newTestNotifyCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newKindsCommand())

	return rootCmd
}
