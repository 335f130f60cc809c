package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every node path under the current node",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := app.DB.List()
		if err != nil {
			return err
		}
		return printNodeTable(entries)
	},
}

// printNodeTable resolves each entry's mtime and renders a Path/Modified
// table, highlighting the current node. A node whose info cannot be read
// (e.g. removed underneath a stale index) still prints with a blank
// Modified column rather than aborting the whole listing.
func printNodeTable(entries []string) error {
	if len(entries) == 0 {
		fmt.Println("No matching nodes.")
		return nil
	}

	rows := make([]ui.NodeRow, len(entries))
	for i, e := range entries {
		row := ui.NodeRow{Path: e}
		if info, err := app.DB.InfoAt(e); err == nil {
			row.Mtime = info.Mtime
		}
		rows[i] = row
	}

	fmt.Println(ui.RenderNodeTable(ui.GetWidth(), rows, app.DB.Current()))
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
