package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/platform/desktop"
	"github.com/vovakirdan/gem-crossing/internal/platform/tui"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open Gem Crossing in a 505x606 desktop window.

Moves trigger when a key is released.

Controls:
  Arrows/WASD - Move one tile
  Space       - Restart the round
  P           - Pause
  Esc/Q       - Quit`,
	RunE: runDesktop,
}

func runDesktop(_ *cobra.Command, _ []string) error {
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := crossing.NewWithStore(tui.NewGameEnv(store, logger).HighScores)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return desktop.Run(game, store, cfg, logger)
}
