// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(jishoCmd)
	jishoCmd.Flags().BoolP("disable", "d", false, "Statically disable the Jisho dictionary integration")
}

// jishoCmd configures and manages the Jisho dictionary integration.
var jishoCmd = &cobra.Command{
	Use:   "jisho",
	Short: "Configure the Jisho dictionary integration",
	Long:  `Enable or disable the Jisho dictionary integration used to enrich verbs with readings, glosses and JLPT levels.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("disable")) {
			viper.Set(key.JishoEnable, false)
			log.Info("Jisho integration disabled")
			handleErr(viper.WriteConfig())
			return
		}

		if !viper.GetBool(key.JishoEnable) {
			confirm := survey.Confirm{
				Message: "Jisho integration is disabled. Enable?",
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}

			viper.Set(key.JishoEnable, response)
			switch err := viper.WriteConfig(); err.(type) {
			case viper.ConfigFileNotFoundError:
				handleErr(viper.SafeWriteConfig())
			default:
				handleErr(err)
			}
		}

		fmt.Printf("%s Jisho integration is enabled\n", icon.Get(icon.Success))
	},
}

func init() {
	jishoCmd.AddCommand(jishoGetCmd)

	jishoGetCmd.Flags().StringP("word", "w", "", "The verb to retrieve the mapped dictionary entry for")
	lo.Must0(jishoGetCmd.MarkFlagRequired("word"))
}

// jishoGetCmd retrieves the dictionary entry associated with a verb.
var jishoGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve the Jisho entry currently associated with a specific verb",
	Run: func(cmd *cobra.Command, args []string) {
		word := lo.Must(cmd.Flags().GetString("word"))

		entry, err := jisho.FindClosest(word)
		handleErr(err)

		handleErr(json.NewEncoder(os.Stdout).Encode(entry))
	},
}

func init() {
	jishoCmd.AddCommand(jishoSetCmd)

	jishoSetCmd.Flags().StringP("word", "w", "", "The verb to establish a mapping for")
	jishoSetCmd.Flags().StringP("slug", "s", "", "The Jisho entry slug to bind to the verb")

	lo.Must0(jishoSetCmd.MarkFlagRequired("word"))
	lo.Must0(jishoSetCmd.MarkFlagRequired("slug"))

	jishoSetCmd.MarkFlagsRequiredTogether("word", "slug")
}

// jishoSetCmd statically binds a verb to a Jisho entry slug.
var jishoSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Statically bind a verb to a specific Jisho entry slug",
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := jisho.GetBySlug(lo.Must(cmd.Flags().GetString("slug")))
		handleErr(err)

		handleErr(jisho.SetRelation(lo.Must(cmd.Flags().GetString("word")), entry))
	},
}
