package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/declgen/declgen/cmd/declgen/commands"
	"github.com/declgen/declgen/logger"
)

var jsonLogs bool

var rootCmd = &cobra.Command{
	Use:   "declgen",
	Short: "declgen - Split translated API declarations into output files",
	Long: `declgen - Declaration-splitting stage of the API code generator.

declgen consumes a translated declaration document (the output of the
upstream interface-document translator) and splits it into named,
independently-compilable output files: one declaration per file, shared
header metadata, and an optional root-namespace anchor file.

Available commands:
  generate - Split a declaration document into output-file descriptors
  config   - Manage declgen configuration
  version  - Show declgen version information

Examples:
  declgen generate components.yaml             # Manifest to stdout
  declgen generate components.yaml -o gen.json # Manifest to file
  declgen generate components.yaml -n API      # With root namespace
  declgen config init                          # Write default declgen.toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
