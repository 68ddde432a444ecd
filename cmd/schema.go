// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tinct-ui/tinct/schema"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd emits the JSON Schema describing a document kind, for use by
// editors and external token compilers.
var schemaCmd = &cobra.Command{
	Use:       "schema [theme|mapping]",
	Short:     "Emit the JSON Schema for theme or mapping documents",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"theme", "mapping"},
	Run: func(cmd *cobra.Command, args []string) {
		var document any

		switch args[0] {
		case "theme":
			document = schema.ThemeSchema()
		case "mapping":
			document = schema.MappingSchema()
		default:
			handleErr(fmt.Errorf("unknown document kind %q, expected theme or mapping", args[0]))
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(document))
	},
}
