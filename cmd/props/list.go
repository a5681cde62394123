package main

import (
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/props/pkg/properties"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bound property kinds",
	Long:  `List every bound property kind with its command-line syntax and description.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := properties.New("props")

		rows := pterm.TableData{{"IDENTITY", "SYNTAX", "DESCRIPTION"}}
		for _, id := range properties.BoundIdentities() {
			p, err := properties.Describe(s, id)
			if err != nil {
				log.Warn().Err(err).Str("property", string(id)).Msg("Could not describe property")
				continue
			}
			rows = append(rows, []string{string(id), p.Syntax(), p.Description()})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
