package main

import (
	"fmt"
	"os"

	"github.com/coldforge/frame/internal/config"
	"github.com/coldforge/frame/internal/engine"
	"github.com/coldforge/frame/internal/logging"
	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagDBPath  string
	flagJSON    bool
	flagNoColor bool
	flagPretty  bool
)

var rootCmd = &cobra.Command{
	Use:   "frame",
	Short: "A personal, filesystem-backed hierarchical note store",
	Long: `frame keeps notes as a tree of directories on disk: each node holds a
short text payload and an mtime, and the current position in the tree (the
"cursor") moves with push/pop/up/down/switch.

Examples:
  frame init
  frame push todo -m "write the quarterly report"
  frame status
  frame history`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		dbpath, err := config.ResolveDBPath(flagDBPath)
		if err != nil {
			return err
		}
		app.DBPath = dbpath
		app.JSONOut = flagJSON || config.GetBool("json")
		app.NoColor = flagNoColor || config.GetBool("no-color")
		app.Pretty = flagPretty
		ui.NoColor = app.NoColor

		// init creates the database itself; everything else needs it open.
		if cmd.Name() == "init" {
			app.Log = logging.Discard()
			return nil
		}

		db, err := engine.Open(dbpath)
		if err != nil {
			return err
		}
		app.DB = db
		app.Log = logging.New(dbpath)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app.DB != nil {
			return app.DB.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "dbpath", "", "path to the frame database (default $HOME/.framedb)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "accepted but has no effect: every command prints plain text")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "render payloads as Markdown on a color terminal")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frame: %v\n", err)
		os.Exit(1)
	}
}
