// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/mapping"
	"github.com/tinct-ui/tinct/schema"
	"github.com/tinct-ui/tinct/theme"
	"github.com/tinct-ui/tinct/token"
	"github.com/tinct-ui/tinct/util"
	"github.com/tinct-ui/tinct/where"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

// initCmd interactively scaffolds a starter theme document, and optionally a
// matching mapping, into the localized theme and mapping directories.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold a starter theme and mapping",
	Run: func(cmd *cobra.Command, args []string) {
		var name string
		handleErr(survey.AskOne(&survey.Input{
			Message: "Theme name:",
			Default: "my-theme",
		}, &name, survey.WithValidator(survey.Required)))

		var background string
		handleErr(survey.AskOne(&survey.Input{
			Message: "Background color:",
			Default: "#1E1E2E",
		}, &background))

		var accent string
		handleErr(survey.AskOne(&survey.Input{
			Message: "Accent color:",
			Default: "#89B4FA",
		}, &accent))

		var text string
		handleErr(survey.AskOne(&survey.Input{
			Message: "Text color:",
			Default: "#CDD6F4",
		}, &text))

		themeDoc := &schema.ThemeDocument{
			Name: name,
			Tokens: token.Theme{
				theme.SignatureBackground: background,
				theme.SignatureAccent:     accent,
				"textColor":               text,
				"mutedColor":              "$textColor",
			},
		}

		themePath := filepath.Join(where.Themes(), util.SanitizeFilename(name)+".json")
		handleErr(schema.SaveTheme(themePath, themeDoc))
		fmt.Printf("%s wrote theme to %s\n", icon.Get(icon.Success), themePath)

		var withMapping bool
		handleErr(survey.AskOne(&survey.Confirm{
			Message: "Write a starter mapping too?",
			Default: true,
		}, &withMapping))

		if !withMapping {
			return
		}

		mappingDoc := &schema.MappingDocument{
			Name:       name,
			Components: starterMapping(),
		}

		mappingPath := filepath.Join(where.Mappings(), util.SanitizeFilename(name)+".json")
		handleErr(schema.SaveMapping(mappingPath, mappingDoc))
		fmt.Printf("%s wrote mapping to %s\n", icon.Get(icon.Success), mappingPath)
	},
}

// starterMapping builds a minimal mapping exercising appearances, variants
// and interaction states, wired to the tokens init scaffolds.
func starterMapping() mapping.Computed {
	return mapping.Computed{
		"Button": {
			Meta: mapping.Meta{
				DefaultAppearance: "solid",
				Variants: map[string]mapping.VariantDef{
					"size": {Values: []string{"small", "medium", "large"}, Default: "medium"},
				},
				States: map[string]mapping.StateDef{
					"hover":    {Priority: 1},
					"active":   {Priority: 2},
					"disabled": {Priority: 3},
				},
			},
			Styles: map[string]cache.Style{
				"solid": {
					"backgroundColor": "$accentColor",
					"color":           "$backgroundColor",
					"bold":            true,
				},
				"solid.hover": {
					"underline": true,
				},
				"solid.active": {
					"backgroundColor": "$textColor",
				},
				"solid.disabled": {
					"faint": true,
				},
				"ghost": {
					"color":       "$accentColor",
					"borderColor": "$accentColor",
					"border":      "rounded",
				},
			},
		},
		"Label": {
			Styles: map[string]cache.Style{
				"default": {
					"color": "$textColor",
				},
			},
		},
	}
}
