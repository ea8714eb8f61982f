// snakey is a terminal snake game.
//
// Usage:
//
//	snakey                   - Play (same as "snakey play")
//	snakey play              - Play the game
//	snakey config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>     - Render frame rate (default: 60)
//	--seed <value>   - RNG seed for reproducible food placement
//	--config <path>  - Path to a custom config YAML
//	--debug          - Verbose logging to stderr
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakey",
	Short: "Snakey - snake in your terminal",
	Long: `Snakey is a terminal snake game with mouse-driven menus,
tunable speed and starting length, rebindable keys, and an optional
wrap-around playfield.

Examples:
  snakey
  snakey play --fps 30
  snakey play --seed 42 --config ./my-snakey.yaml
  snakey config > ~/.snakey/config.yaml`,
	RunE: runPlay, // bare "snakey" plays
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
