package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/config"
	"github.com/spf13/cobra"
)

var flagHistoryCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently visited nodes",
	Long: `history prints the most recently visited node paths, newest first,
marking the current one.

Examples:
  frame history
  frame history --count 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := flagHistoryCount
		if count == 0 {
			count = config.GetInt("history.count")
		}
		entries, err := app.DB.History(count)
		if err != nil {
			return err
		}

		fmt.Println("Frame history")
		for i, e := range entries {
			indicator := " "
			if i == 0 {
				indicator = "*"
			}
			fmt.Printf("%s  %5d: %s\n", indicator, i, e)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryCount, "count", 0, "number of entries to show (default from config, 10)")
	rootCmd.AddCommand(historyCmd)
}
