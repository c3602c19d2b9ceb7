package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/platform/tui"
	"github.com/vovakirdan/gem-crossing/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing Gem Crossing (or another registered game) in the terminal.

Controls:
  Arrows/WASD - Move one tile
  Space       - Restart the round
  P           - Pause
  Esc/B       - Leave (when paused or after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - 5 lives, slower bugs, speed grows with score
  normal - 3 lives, speed grows with score
  hard   - 2 lives, faster bugs spawning more often
  fixed  - The classic ruleset, no progression

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --seed 42
  crossing play --config ./my-crossing.yaml --log-file crossing.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := crossing.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'crossing list' to see available games", gameID)
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, tui.NewGameEnv(store, logger))
	if err != nil {
		return err
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return err
	}
	return nil
}
