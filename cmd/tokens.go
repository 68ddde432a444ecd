// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/theme"
	"github.com/tinct-ui/tinct/token"
	"github.com/tinct-ui/tinct/util"
)

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolP("raw", "r", false, "Show token values before reference resolution")
}

// tokensCmd lists the design tokens of the active theme.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the design tokens of the active theme and their resolved values",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		themeDoc, err := loadThemeDocument()
		handleErr(err)

		tokens := themeDoc.Tokens
		if !raw {
			tokens = token.Flatten(themeDoc.Tokens)
		}

		if viper.GetBool(key.CliJsonOutput) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(tokens))
			return
		}

		cmd.Printf(
			"%s %s %s\n\n",
			icon.Get(icon.Theme),
			style.New().Bold(true).Foreground(color.HiPurple).Render(themeName(themeDoc.Name, viper.GetString(key.StylesDefaultTheme))),
			style.Faint(theme.ComputeID(themeDoc.Tokens)),
		)

		names := lo.Keys(tokens)
		sort.Strings(names)
		for _, name := range names {
			value := fmt.Sprintf("%v", tokens[name])

			cmd.Printf("  %s %s", style.Fg(color.Cyan)(name+":"), value)
			if token.IsReference(themeDoc.Tokens[name]) && !raw {
				cmd.Printf(" %s", style.Faint(fmt.Sprintf("(from %v)", themeDoc.Tokens[name])))
			}
			cmd.Println()
		}
	},
}

// themeName falls back to the document's file stem when the theme carries no
// name of its own.
func themeName(name, path string) string {
	if name != "" {
		return name
	}

	if stem := util.FileStem(path); path != "" && stem != "" {
		return stem
	}

	return "unnamed theme"
}
