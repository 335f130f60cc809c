package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var flagStatusSince string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current node and its payload",
	Long: `status prints the cursor's node path, its last-modified time, and its
payload text.

Examples:
  frame status
  frame status --since "3 days ago"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := app.DB.Info()
		if err != nil {
			return err
		}
		payload, err := app.DB.Payload()
		if err != nil {
			return err
		}

		if flagStatusSince != "" {
			bound, err := parseWhen(flagStatusSince)
			if err != nil {
				return err
			}
			if info.Mtime.Before(bound) {
				fmt.Printf("%s has not changed since %s\n", app.DB.Current(), flagStatusSince)
				return nil
			}
		}

		fmt.Printf("Current frame\n   %s\n\n", ui.RenderCurrent(app.DB.Current()))
		fmt.Printf("Notes (%s)\n", humanize.Time(info.Mtime))
		fmt.Println(ui.RenderPayload(payload, app.Pretty, ui.GetWidth()))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&flagStatusSince, "since", "", "only report if the node changed since this time (e.g. \"2 days ago\")")
	rootCmd.AddCommand(statusCmd)
}
