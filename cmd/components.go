// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/util"
)

func init() {
	rootCmd.AddCommand(componentsCmd)
}

// componentsCmd lists the components of the active mapping together with
// their declared appearances, variants and states.
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the components defined by the active mapping",
	Run: func(cmd *cobra.Command, args []string) {
		mappingDoc, err := loadMappingDocument()
		handleErr(err)

		names := mappingDoc.Components.Names()

		if viper.GetBool(key.CliJsonOutput) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(names))
			return
		}

		for _, name := range names {
			component := mappingDoc.Components.Component(name).MustGet()

			appearances := appearancesOf(component.Styles)
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Component),
				style.New().Bold(true).Foreground(color.HiPurple).Render(name),
				style.Faint(util.Quantify(len(appearances), "appearance", "appearances")),
			)

			for _, appearance := range appearances {
				cmd.Printf("    %s\n", style.Fg(color.Cyan)(appearance))
			}

			if len(component.Meta.Variants) > 0 {
				variantNames := lo.Keys(component.Meta.Variants)
				sort.Strings(variantNames)
				cmd.Printf("    %s", style.Faint("variants:"))
				for _, variant := range variantNames {
					cmd.Printf(" %s", style.Fg(color.Yellow)(variant))
				}
				cmd.Println()
			}

			if len(component.Meta.States) > 0 {
				stateNames := lo.Keys(component.Meta.States)
				sort.Strings(stateNames)
				cmd.Printf("    %s", style.Faint("states:"))
				for _, state := range stateNames {
					cmd.Printf(" %s", style.Fg(color.Yellow)(state))
				}
				cmd.Println()
			}
		}
	},
}

// appearancesOf extracts the distinct appearance prefixes of a component's
// style paths, in sorted order. A path is "<appearance>" or
// "<appearance>.<state>".
func appearancesOf(styles map[string]cache.Style) []string {
	seen := make(map[string]struct{})
	for path := range styles {
		appearance, _, _ := strings.Cut(path, ".")
		seen[appearance] = struct{}{}
	}

	appearances := lo.Keys(seen)
	sort.Strings(appearances)
	return appearances
}
