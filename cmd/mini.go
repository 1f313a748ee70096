// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"github.com/Neicx/kana-dojo/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Resume from the session history instead of a fresh search")
}

// miniCmd launches the application in a lightweight, prompt-driven terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, prompt-driven terminal interface",
	Long:  `Initialize a streamlined, minimalist terminal UI for verb lookup and conjugation.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
