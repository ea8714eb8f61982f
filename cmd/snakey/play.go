package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vs-123/snakey/internal/config"
	"github.com/vs-123/snakey/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game.

Controls:
  Arrows/WASD - Steer the snake (rebindable)
  Esc         - Pause and resume (rebindable)
  Mouse       - Click buttons, drag sliders
  Ctrl+C      - Quit

Examples:
  snakey play
  snakey play --fps 30 --seed 42
  snakey play --config ./my-snakey.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		// An explicit --config that fails to load is a hard error;
		// Load already fell back to defaults for the soft paths.
		return err
	}
	if flagFPS > 0 {
		cfg.Shell.FPS = flagFPS
		cfg.Normalize()
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		log.Debug("terminal size", "width", w, "height", h)
		if w < cfg.Grid.Width+2 || h < cfg.Grid.Height+3 {
			log.Warn("terminal smaller than playfield, view will clip",
				"need_width", cfg.Grid.Width+2, "need_height", cfg.Grid.Height+3)
		}
	}

	log.Debug("starting", "grid", cfg.Grid, "fps", cfg.Shell.FPS, "seed", flagSeed)
	return tui.Run(cfg, flagSeed)
}
