package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start blockfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	RunE: runMenu,
}

// runMenu alternates between the picker and the chosen game until the
// player quits the picker. Each game gets a fresh seed unless --seed is set.
func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config
		if res.Quit {
			return nil
		}

		game, err := newGame(res.GameID)
		if err != nil {
			logger.Error("cannot create variant", "variant", res.GameID, "error", err)
			continue
		}

		run := cfg
		if flagSeed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		logger.Info("starting", "variant", res.GameID, "fps", flagFPS)
		if err := tui.Run(game, run, logger); err != nil {
			return fmt.Errorf("run %s: %w", res.GameID, err)
		}
	}
}
