package main

import (
	"fmt"

	"github.com/coldforge/frame/internal/templates"
	"github.com/coldforge/frame/internal/ui"
	"github.com/spf13/cobra"
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Read or edit the current node's payload text",
}

var payloadReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the current node's payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := app.DB.Payload()
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderPayload(payload, app.Pretty, ui.GetWidth()))
		return nil
	},
}

var (
	flagPayloadReplaceMessage  string
	flagPayloadReplaceTemplate string
)

var payloadReplaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Replace the current node's payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		templateBody, err := resolveTemplate(flagPayloadReplaceTemplate)
		if err != nil {
			return err
		}
		message, err := composeMessage(flagPayloadReplaceMessage, templateBody)
		if err != nil {
			return err
		}
		if err := app.DB.PayloadReplace(message); err != nil {
			return err
		}
		fmt.Println("Payload replaced.")
		return nil
	},
}

var (
	flagPayloadAppendMessage  string
	flagPayloadAppendTemplate string
)

var payloadAppendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append to the current node's payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		templateBody, err := resolveTemplate(flagPayloadAppendTemplate)
		if err != nil {
			return err
		}
		message, err := composeMessage(flagPayloadAppendMessage, templateBody)
		if err != nil {
			return err
		}
		if err := app.DB.PayloadAppend(message); err != nil {
			return err
		}
		fmt.Println("Payload appended.")
		return nil
	},
}

func resolveTemplate(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	path, err := templates.DefaultPath()
	if err != nil {
		return "", err
	}
	set, err := templates.Load(path)
	if err != nil {
		return "", err
	}
	return set.Get(name)
}

func init() {
	payloadReplaceCmd.Flags().StringVarP(&flagPayloadReplaceMessage, "message", "m", "", "payload text (skips the editor)")
	payloadReplaceCmd.Flags().StringVar(&flagPayloadReplaceTemplate, "template", "", "seed the payload from a named template")

	payloadAppendCmd.Flags().StringVarP(&flagPayloadAppendMessage, "message", "m", "", "text to append (skips the editor)")
	payloadAppendCmd.Flags().StringVar(&flagPayloadAppendTemplate, "template", "", "seed the appended text from a named template")

	payloadCmd.AddCommand(payloadReadCmd, payloadReplaceCmd, payloadAppendCmd)
	rootCmd.AddCommand(payloadCmd)
}
