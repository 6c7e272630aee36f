package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Down/J/S     - Soft drop
  Up/K/W/X     - Rotate clockwise
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  blockfall play classic
  blockfall play tetromino --seed 42
  blockfall play classic --config ./my-classic.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
}

// runtimeConfig sizes the game to the current terminal, or 80x24 when
// stdout is not a terminal, and applies the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newGame creates variant id. The config path must be set before the
// registry builds the instance.
func newGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown variant %q (run 'blockfall list')", id)
	}
	tetris.SetConfigPath(flagConfig)
	return registry.Create(id)
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := newGame(args[0])
	if err != nil {
		return err
	}

	logger.Info("starting", "variant", game.ID(), "fps", flagFPS, "config", flagConfig)
	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
