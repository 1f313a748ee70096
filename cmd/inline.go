// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/inline"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/query"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute for verb discovery")
	inlineCmd.Flags().StringP("verb", "b", "", "Criteria for selecting a specific verb from the search results")
	inlineCmd.Flags().StringP("categories", "c", "", "Criteria for selecting grammatical categories from the conjugation table")
	inlineCmd.Flags().BoolP("conjugate", "C", false, "Include the full conjugation table for selected verbs")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("include-jisho", "J", false, "Include the matched Jisho dictionary entry in the structured output")
	inlineCmd.Flags().BoolP("all-engines", "a", false, "Search every available engine instead of the default one")
	lo.Must0(viper.BindPFlag(key.JishoEnable, inlineCmd.Flags().Lookup("include-jisho")))

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:     "inline",
	Aliases: []string{"conjugate"},
	Short:   "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Verb selectors:
  first - first verb in the list
  last - last verb in the list
  exact - verb whose dictionary form, reading or romaji equals the query
  [number] - select verb by index (starting from 0)

Category selectors:
  all - all grammatical categories
  [name],[name] - categories by name
  @[substring]@ - categories by name substring

When using the json flag the verb selector could be omitted. That way, it will select all verbs`,
	Example: "  kanadojo inline -q taberu -b first -C -j",
	PreRun: func(cmd *cobra.Command, args []string) {
		asJson, _ := cmd.Flags().GetBool("json")

		if !asJson {
			lo.Must0(cmd.MarkFlagRequired("verb"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			engines []engine.Engine
			err     error
		)

		var descriptors []*engine.Descriptor
		if lo.Must(cmd.Flags().GetBool("all-engines")) {
			descriptors = append(descriptors, engine.Builtins()...)
			descriptors = append(descriptors, engine.Customs()...)
		} else {
			name := viper.GetString(key.DefaultEngine)
			if name == "" {
				handleErr(errors.New("engine not set"))
			}

			d, ok := engine.Get(name)
			if !ok {
				handleErr(fmt.Errorf("engine not found: %s", name))
			}

			descriptors = append(descriptors, d)
		}

		for _, d := range descriptors {
			eng, err := d.Load()
			handleErr(err)

			engines = append(engines, eng)
		}

		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		verbFlag := lo.Must(cmd.Flags().GetString("verb"))
		verbPicker := mo.None[inline.VerbPicker]()
		if verbFlag != "" {
			kind, value := verbFlag, searchQuery
			if _, err := strconv.ParseUint(verbFlag, 10, 16); err == nil {
				kind, value = "index", verbFlag
			}

			fn, err := inline.ParseVerbPicker(kind, value)
			handleErr(err)
			verbPicker = mo.Some(fn)
		}

		categoriesFlag := lo.Must(cmd.Flags().GetString("categories"))
		categoryFilter := mo.None[inline.CategoryFilter]()
		if categoriesFlag != "" {
			fn, err := inline.ParseCategoryFilter(categoriesFlag)
			handleErr(err)
			categoryFilter = mo.Some(fn)
		}

		options := &inline.Options{
			Engines:        engines,
			Json:           lo.Must(cmd.Flags().GetBool("json")),
			Query:          searchQuery,
			IncludeJisho:   lo.Must(cmd.Flags().GetBool("include-jisho")),
			Conjugate:      lo.Must(cmd.Flags().GetBool("conjugate")),
			VerbPicker:     verbPicker,
			CategoryFilter: categoryFilter,
			Out:            writer,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("jisho", "d", false, "Generate the JSON Schema for Jisho dictionary entry objects")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "verb", "form", "category", "conjugation", "entry", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("jisho")):
			schema = reflector.Reflect(&jisho.Entry{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
