package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagPushMessage  string
	flagPushTemplate string
)

var pushCmd = &cobra.Command{
	Use:   "push <name>",
	Short: "Create a child node and move the cursor into it",
	Long: `push creates a new node under the current one and makes it the
current node.

Examples:
  frame push groceries
  frame push groceries -m "milk, eggs, bread"
  frame push meeting --template standup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		templateBody, err := resolveTemplate(flagPushTemplate)
		if err != nil {
			return err
		}

		message, err := composeMessage(flagPushMessage, templateBody)
		if err != nil {
			return err
		}

		warning, err := app.DB.Push(name, message)
		if err != nil {
			return err
		}
		if warning != nil {
			app.Log.Warn("push recorded with warning", "name", name, "error", warning)
			fmt.Println(ui.RenderWarning("push succeeded but %v", warning))
		}

		fmt.Printf("Now at %s\n", ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVarP(&flagPushMessage, "message", "m", "", "payload text (skips the editor)")
	pushCmd.Flags().StringVar(&flagPushTemplate, "template", "", "seed the payload from a named template")
	rootCmd.AddCommand(pushCmd)
}
