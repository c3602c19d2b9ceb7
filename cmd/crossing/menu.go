package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/platform/tui"
	"github.com/vovakirdan/gem-crossing/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title screen",
	Long: `Start at the title screen with Play, High scores and Quit entries.

Leaving a finished or paused round returns to the title screen.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  crossing menu
  crossing menu --fps 30
  crossing menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID, tui.NewGameEnv(store, logger))
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		model, err := tui.RunGame(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if model.IsQuitting() {
			return nil
		}
	}
}
