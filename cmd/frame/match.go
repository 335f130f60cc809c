package main

import (
	"github.com/coldforge/frame/internal/engine"
	"github.com/spf13/cobra"
)

var (
	flagMatchInvert   bool
	flagMatchFromRoot bool
)

var matchCmd = &cobra.Command{
	Use:   "match <term>",
	Short: "List node paths containing a term",
	Long: `match searches node paths under the current node (or, with
--from-root, under the database root) for the given term. Only the
path itself is searched, not payload text. --invert lists nodes whose
path does NOT contain the term instead.

Examples:
  frame match groceries
  frame match urgent --from-root
  frame match done --invert`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := args[0]

		var flags uint32
		if flagMatchInvert {
			flags |= engine.MatchInvert
		}

		var entries []string
		var err error
		if flagMatchFromRoot {
			entries, err = app.DB.MatchFromRoot(term, flags)
		} else {
			entries, err = app.DB.Match(term, flags)
		}
		if err != nil {
			return err
		}
		return printNodeTable(entries)
	},
}

func init() {
	matchCmd.Flags().BoolVar(&flagMatchInvert, "invert", false, "list nodes that do not match the term")
	matchCmd.Flags().BoolVar(&flagMatchFromRoot, "from-root", false, "search from the database root instead of the current node")
	rootCmd.AddCommand(matchCmd)
}
