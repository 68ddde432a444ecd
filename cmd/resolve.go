// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/render"
	"github.com/tinct-ui/tinct/style"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("appearance", "a", "", "The appearance to resolve, defaults to the component's own")
	resolveCmd.Flags().StringArrayP("variant", "V", []string{}, "Variant overrides as name=value pairs")
	resolveCmd.Flags().StringSliceP("flag", "f", []string{}, "Active interaction flags")
	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("flag", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.Interactions(), cobra.ShellCompDirectiveNoFileComp
	}))

	resolveCmd.Flags().BoolP("swatch", "s", false, "Render a sample swatch with the resolved style")
}

// resolveCmd resolves a single component through the full styling pipeline.
var resolveCmd = &cobra.Command{
	Use:               "resolve [component]",
	Short:             "Resolve the effective style of a component for a theme, appearance, variants and flags",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionComponents,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			component  = args[0]
			appearance = lo.Must(cmd.Flags().GetString("appearance"))
			rawPairs   = lo.Must(cmd.Flags().GetStringArray("variant"))
			flags      = lo.Must(cmd.Flags().GetStringSlice("flag"))
			swatch     = lo.Must(cmd.Flags().GetBool("swatch"))
		)

		env, _ := loadSession(cmd)
		defer env.Close()

		if env.Mapping().Component(component).IsAbsent() {
			handleErr(errUnknownComponent(component, env.Mapping().Names()))
		}

		variants, err := parseVariantPairs(rawPairs)
		handleErr(err)

		handle := env.ResolveStyle(component, query.Options{
			Appearance: appearance,
			Variants:   variants,
		})
		handle.SetInteractions(flags...)

		resolved := handle.Style()

		if viper.GetBool(key.CliJsonOutput) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(resolved))
			return
		}

		cmd.Printf(
			"%s %s %s\n\n",
			icon.Get(icon.Component),
			style.New().Bold(true).Foreground(color.HiPurple).Render(component),
			style.Faint(handle.Theme().ID),
		)

		properties := lo.Keys(resolved)
		sort.Strings(properties)
		for _, property := range properties {
			cmd.Printf(
				"  %s %s\n",
				style.Fg(color.Cyan)(property+":"),
				fmt.Sprintf("%v", resolved[property]),
			)
		}

		if swatch {
			cmd.Println()
			cmd.Println(render.Style(resolved).Render(viper.GetString(key.PreviewSampleText)))
		}
	},
}

// parseVariantPairs converts name=value arguments into a variant map,
// recovering booleans and numbers so cache keys match programmatic use.
func parseVariantPairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	variants := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variant %q, expected name=value", pair)
		}

		switch {
		case raw == "true" || raw == "false":
			variants[name] = raw == "true"
		default:
			if number, err := strconv.ParseFloat(raw, 64); err == nil {
				variants[name] = number
			} else {
				variants[name] = raw
			}
		}
	}

	return variants, nil
}
