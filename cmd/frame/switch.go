package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch <path>",
	Short: "Jump the cursor to an arbitrary node path",
	Long: `switch moves the cursor directly to the given node path. Unlike
down, the path is resolved from the database root, not from the
current node.

Examples:
  frame switch root/groceries
  frame switch root`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.DB.Switch(args[0]); err != nil {
			return err
		}
		fmt.Printf("Now at %s\n", ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)
}
