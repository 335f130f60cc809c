package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var flagDeleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <nodepath>",
	Short: "Delete a node and its subtree",
	Long: `delete removes the node at nodepath and everything beneath it.
Like switch, nodepath is resolved from the database root, not from the
current node. If the cursor is at or inside the deleted subtree, it
resets to root. Deleting root is refused.

Examples:
  frame delete root/groceries
  frame delete root/groceries --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		if !flagDeleteForce && ui.IsTerminal() {
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q and everything beneath it?", target)).
				Value(&confirmed).
				Run()
			if err != nil {
				return fmt.Errorf("confirmation cancelled: %w", err)
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		warning, err := app.DB.Delete(target)
		if err != nil {
			return err
		}
		if warning != nil {
			app.Log.Warn("delete recorded with warning", "target", target, "error", warning)
			fmt.Println(ui.RenderWarning("delete succeeded but %v", warning))
		}

		fmt.Printf("Deleted %s\nNow at %s\n", target, ui.RenderCurrent(app.DB.Current()))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
