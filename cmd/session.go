// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/schema"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/theme"
)

// loadThemeDocument reads the theme named by the persistent flag, falling
// back to the configured default path.
func loadThemeDocument() (*schema.ThemeDocument, error) {
	path := viper.GetString(key.StylesDefaultTheme)
	if path == "" {
		return nil, errors.New("no theme document given, pass --theme or set styles.default_theme")
	}

	return schema.LoadTheme(path)
}

func loadMappingDocument() (*schema.MappingDocument, error) {
	path := viper.GetString(key.StylesDefaultMapping)
	if path == "" {
		return nil, errors.New("no mapping document given, pass --mapping or set styles.default_mapping")
	}

	return schema.LoadMapping(path)
}

// loadSession assembles the full resolution pipeline from the documents the
// invocation points at: a themed store, the computed mapping and a style
// cache sized from configuration.
func loadSession(_ *cobra.Command) (*query.Environment, []*schema.ThemeDocument) {
	themeDoc, err := loadThemeDocument()
	handleErr(err)

	mappingDoc, err := loadMappingDocument()
	handleErr(err)

	store := theme.NewStore()
	store.SetTheme(themeDoc.Tokens)

	env := query.NewEnvironment(
		mappingDoc.Components,
		store,
		cache.New(viper.GetInt(key.CacheMaxSize)),
	)

	return env, []*schema.ThemeDocument{themeDoc}
}

func errUnknownComponent(name string, known []string) error {
	if len(known) == 0 {
		return fmt.Errorf("unknown component %s, the mapping defines none", style.Fg(color.Red)(name))
	}

	closest := lo.MinBy(known, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown component %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

// completionComponents fuzzily matches mapping component names for shell
// completion. Document load failures silently yield no suggestions.
func completionComponents(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	mappingDoc, err := loadMappingDocument()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := mappingDoc.Components.Names()
	if toComplete == "" {
		return names, cobra.ShellCompDirectiveNoFileComp
	}

	return fuzzy.FindFold(toComplete, names), cobra.ShellCompDirectiveNoFileComp
}
