package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vs-123/snakey/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration in YAML form. Redirect it to
~/.snakey/config.yaml or ./snakey.yaml and edit to customize.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
