package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sabhook/internal/embed"
	"sabhook/internal/logging"
	"sabhook/internal/textutil"
)

const previewDescriptionWidth = 72

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "preview <type> <title> <message> [url[,url...]...]",
		Short: "Show the embed for an event without sending it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return inputError("preview needs <type> <title> <message>, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc := ctx.formatter(cfg).Format(args[0], args[1], args[2], textutil.SplitURLs(args[3:]))
			payload := embed.NewPayload(doc, cfg.Discord.Username, cfg.Discord.AvatarURL)
			schemaErr := embed.Validate(payload)

			if wantsJSON(cmd, jsonOutput) {
				if schemaErr != nil {
					ctx.loggerValue().Warn("payload does not match webhook schema", logging.Error(schemaErr))
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Part", "Value"}, previewRows(payload), nil))
			if schemaErr != nil {
				fmt.Fprintf(out, "Schema: invalid (%v)\n", schemaErr)
			} else {
				fmt.Fprintln(out, "Schema: valid")
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the webhook payload as JSON")
	return cmd
}

func previewRows(payload embed.Payload) [][]string {
	doc := payload.Embeds[0]
	rows := [][]string{
		{"Username", payload.Username},
		{"Title", doc.Title},
		{"Description", textutil.Truncate(doc.Description, previewDescriptionWidth)},
		{"Color", fmt.Sprintf("#%06X (%d)", doc.Color, doc.Color)},
		{"Timestamp", doc.Timestamp},
		{"Author", doc.Author.Name},
	}
	for _, f := range doc.Fields {
		rows = append(rows, []string{f.Name, f.Value + inlineMarker(f.Inline)})
	}
	rows = append(rows, []string{"Footer", doc.Footer.Text})
	if doc.Thumbnail != nil {
		rows = append(rows, []string{"Thumbnail", doc.Thumbnail.URL})
	}
	return rows
}

func inlineMarker(inline bool) string {
	if inline {
		return " (inline)"
	}
	return ""
}
