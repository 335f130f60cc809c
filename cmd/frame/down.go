package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var downCmd = &cobra.Command{
	Use:   "down <name>",
	Short: "Move the cursor into a child node",
	Long: `down moves into a child of the current node, without creating it.
Use push to create a node that does not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.DB.Down(args[0]); err != nil {
			return err
		}
		fmt.Printf("Now at %s\n", ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downCmd)
}
