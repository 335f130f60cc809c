package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/coldforge/frame/internal/config"
	"github.com/coldforge/frame/internal/engine"
	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var flagInteractive bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new frame database",
	Long: `init creates the on-disk layout for a new database: the root node,
an empty index, and a history containing just "root".

Examples:
  frame init
  frame init --dbpath ~/notes.framedb`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbpath := app.DBPath

		if flagInteractive && ui.IsTerminal() {
			var editor string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewNote().
						Title("frame setup").
						Description(fmt.Sprintf("Creating a new database at %s.", dbpath)),
					huh.NewInput().
						Title("Preferred editor").
						Description("Applies to this init run only; it is not saved to a config file.").
						Placeholder("vim").
						Value(&editor),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("setup cancelled: %w", err)
			}
			if editor != "" {
				config.Set("editor", editor)
			}
		}

		db, err := engine.Create(dbpath)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("Initialized frame database at %s\n", dbpath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "walk through setup with an interactive form")
	rootCmd.AddCommand(initCmd)
}
