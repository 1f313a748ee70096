// Package cmd implements the command-line interface for kana-dojo.
package cmd

import (
	"github.com/Neicx/kana-dojo/engine/custom"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd facilitates the execution of local Lua engine files for development and debugging.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a local Lua engine file",
	Long: `Initialize the Lua 5.1 virtual machine to load a specified script. Useful for engine development and debugging.
The script is validated against the required engine entry points.`,
	Args:    cobra.ExactArgs(1),
	Example: "  kanadojo run ./my-engine.lua",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := custom.LoadEngine(args[0])
		handleErr(err)
	},
}
