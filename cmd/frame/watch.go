package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coldforge/frame/internal/ui"
	"github.com/coldforge/frame/internal/watch"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the current node and reprint its status on change",
	Long: `watch monitors the current node's payload file and reprints its
status whenever it changes on disk, until interrupted with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := app.DB.CurrentDir()
		current := app.DB.Current()

		printNow := func() {
			info, err := app.DB.Info()
			if err != nil {
				fmt.Println(ui.RenderWarning("%v", err))
				return
			}
			payload, err := app.DB.Payload()
			if err != nil {
				fmt.Println(ui.RenderWarning("%v", err))
				return
			}
			fmt.Printf("\n%s  (%s)\n", ui.RenderCurrent(current), humanize.Time(info.Mtime))
			fmt.Println(ui.RenderPayload(payload, app.Pretty, ui.GetWidth()))
		}

		nw, err := watch.New(dir, printNow)
		if err != nil {
			return err
		}
		defer nw.Close()

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		fmt.Printf("Watching %s. Press Ctrl-C to stop.\n", current)
		printNow()
		nw.Run(ctx, printNow)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
