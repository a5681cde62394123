package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/props/pkg/ui"
)

//go:embed manual.md
var manualContent string

var manualFormat string

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Show the property service manual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(manualFormat)
		if err != nil {
			return err
		}
		if format == ui.FormatAuto {
			format = ui.DetectFormat(os.Stdout)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(manualContent, format))
		return nil
	},
}

func init() {
	manualCmd.Flags().StringVar(&manualFormat, "format", "auto", "Output format: auto, term or text")
}
