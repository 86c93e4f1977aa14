package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declgen/declgen/config"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage declgen configuration",
	Long:  `Show the effective configuration or write a default declgen.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default declgen.toml to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(config.ProjectConfigName); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", config.ProjectConfigName)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
