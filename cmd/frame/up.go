package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Move the cursor to the parent node",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.DB.Up(); err != nil {
			return err
		}
		fmt.Printf("Now at %s\n", ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
