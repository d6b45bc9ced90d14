package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sabhook/internal/events"
)

type kindView struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
	Circle string `json:"circle"`
}

func newKindsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "kinds",
		Short:       "List the SABnzbd notification types and how they render",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			views := kindViews()
			if wantsJSON(cmd, jsonOutput) {
				return writeJSON(cmd, views)
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Kind, v.Emoji + " " + v.Label, v.Circle + " " + v.Color})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Type", "Label", "Color"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print as JSON")
	return cmd
}

func kindViews() []kindView {
	kinds := events.Kinds()
	views := make([]kindView, 0, len(kinds))
	for _, k := range kinds {
		p := events.Lookup(k)
		views = append(views, kindView{
			Kind:   string(k),
			Label:  p.Label,
			Emoji:  p.Emoji,
			Color:  fmt.Sprintf("#%06X", p.Color),
			Circle: events.CircleFor(p.Color),
		})
	}
	return views
}
