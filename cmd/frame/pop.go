package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Delete the current node and move the cursor to its parent",
	RunE: func(cmd *cobra.Command, args []string) error {
		warning, err := app.DB.Pop()
		if err != nil {
			return err
		}
		if warning != nil {
			app.Log.Warn("pop recorded with warning", "error", warning)
			fmt.Println(ui.RenderWarning("pop succeeded but %v", warning))
		}
		fmt.Printf("Now at %s\n", ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(popCmd)
}
