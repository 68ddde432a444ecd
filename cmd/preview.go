// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/preview"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/schema"
	"github.com/tinct-ui/tinct/theme"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

// previewCmd opens the interactive previewer. Positional arguments name
// extra theme documents that can be rotated through at runtime.
var previewCmd = &cobra.Command{
	Use:   "preview [theme...]",
	Short: "Interactively preview resolved component styles",
	Run: func(cmd *cobra.Command, args []string) {
		themeDoc, err := loadThemeDocument()
		handleErr(err)

		mappingDoc, err := loadMappingDocument()
		handleErr(err)

		themes := []*schema.ThemeDocument{themeDoc}
		for _, path := range args {
			extra, err := schema.LoadTheme(path)
			handleErr(err)
			themes = append(themes, extra)
		}

		store := theme.NewStore()
		env := query.NewEnvironment(
			mappingDoc.Components,
			store,
			cache.New(viper.GetInt(key.CacheMaxSize)),
		)
		defer env.Close()

		handleErr(preview.Run(&preview.Options{
			Environment: env,
			Themes:      themes,
		}))
	},
}
