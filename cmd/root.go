// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Neicx/kana-dojo/color"
	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/log"
	"github.com/Neicx/kana-dojo/query"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/tui"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/Neicx/kana-dojo/version"
	"github.com/Neicx/kana-dojo/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("save-history", "s", true, "Record lookups in the session history panel")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnLookup, rootCmd.PersistentFlags().Lookup("save-history")))

	rootCmd.PersistentFlags().StringP("engine", "E", "", "Specify the conjugation engine to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("engine", completionEngineNames))
	lo.Must0(viper.BindPFlag(key.DefaultEngine, rootCmd.PersistentFlags().Lookup("engine")))

	rootCmd.Flags().StringP("query", "q", "", "Search the given query right away")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().BoolP("continue", "c", false, "Open the session history view on startup")
	rootCmd.Flags().StringP("permalink", "p", "", "Restore lookup state from a permalink string")

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

func completionEngineNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string

	for _, d := range engine.Builtins() {
		names = append(names, d.Name)
	}

	for _, d := range engine.Customs() {
		names = append(names, d.Name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// rootCmd defines the entry point for the kana-dojo application.
var rootCmd = &cobra.Command{
	Use:   constant.KanaDojo,
	Short: "A minimalist command-line interface for Japanese verb conjugation",
	Long: constant.AsciiArtLogo + "\n" +
		theme.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for Japanese verb conjugation"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Query:   lo.Must(cmd.Flags().GetString("query")),
			History: lo.Must(cmd.Flags().GetBool("continue")),
		}

		if link := lo.Must(cmd.Flags().GetString("permalink")); link != "" {
			p, err := verb.ParsePermalink(link)
			handleErr(err)

			if p.Engine != "" {
				options.Engine = p.Engine
			}
			options.Query = p.Verb
			history.Import(p, p.Engine)
		}

		handleErr(tui.Run(&options))
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
