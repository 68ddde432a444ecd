// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/constant"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/log"
	"github.com/tinct-ui/tinct/preview"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/util"
	"github.com/tinct-ui/tinct/version"
	"github.com/tinct-ui/tinct/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Path to the theme document to resolve against")
	lo.Must0(viper.BindPFlag(key.StylesDefaultTheme, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().StringP("mapping", "m", "", "Path to the computed mapping document")
	lo.Must0(viper.BindPFlag(key.StylesDefaultMapping, rootCmd.PersistentFlags().Lookup("mapping")))

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as a JSON string")
	lo.Must0(viper.BindPFlag(key.CliJsonOutput, rootCmd.PersistentFlags().Lookup("json")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the tinct application.
var rootCmd = &cobra.Command{
	Use:   constant.Tinct,
	Short: "A design-token styling toolkit for terminal widgets",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A design-token styling toolkit for terminal widgets"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		env, themes := loadSession(cmd)
		defer env.Close()

		options := preview.Options{
			Environment: env,
			Themes:      themes,
		}
		handleErr(preview.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
