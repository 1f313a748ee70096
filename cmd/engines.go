// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Neicx/kana-dojo/color"
	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(enginesCmd)
}

// enginesCmd provides a parent command for managing conjugation engines.
var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "Manage built-in and custom conjugation engines",
}

func init() {
	enginesCmd.AddCommand(enginesListCmd)

	enginesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	enginesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua engines")
	enginesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in engines")

	enginesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	enginesListCmd.SetOut(os.Stdout)
}

// enginesListCmd displays a summary of all registered conjugation engines.
var enginesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered conjugation engines",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := theme.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, d := range engine.Builtins() {
				cmd.Println(d.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, d := range engine.Customs() {
				cmd.Println(d.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	enginesCmd.AddCommand(enginesRemoveCmd)

	enginesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom engine(s) to uninstall")
	lo.Must0(enginesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		files, err := filesystem.API().ReadDir(where.Engines())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(files, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if filepath.Ext(name) != ".lua" {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// enginesRemoveCmd facilitates the uninstallation of custom Lua engines.
var enginesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua engines from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Engines(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), theme.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	enginesCmd.AddCommand(enginesGenCmd)

	enginesGenCmd.Flags().StringP("name", "n", "", "The display name of the new conjugation engine")

	lo.Must0(enginesGenCmd.MarkFlagRequired("name"))
}

// enginesGenCmd scaffolds a boilerplate Lua engine script.
var enginesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua engine script using a predefined template",
	Long:  `Generate a boilerplate Lua engine script with the required entry points and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name            string
			SearchVerbsFn   string
			ConjugateVerbFn string
			Author          string
		}{
			Name:            lo.Must(cmd.Flags().GetString("name")),
			SearchVerbsFn:   constant.SearchVerbsFn,
			ConjugateVerbFn: constant.ConjugateVerbFn,
			Author:          author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("engine").Funcs(funcMap).Parse(constant.EngineTemplate)
		handleErr(err)

		target := filepath.Join(where.Engines(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
