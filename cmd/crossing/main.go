// crossing is a Frogger-style arcade game for the terminal: cross three lanes
// of bugs, pick up gems on the way and reach the water.
//
// Usage:
//
//	crossing play            - Play Gem Crossing
//	crossing menu            - Start at the title screen (play, high scores)
//	crossing desktop         - Play in a desktop window
//	crossing serve           - Start SSH server for remote play
//	crossing scores          - Show high scores
//	crossing list            - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.crossing/scores.db)
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--config <path>     - Custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gem-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Gem Crossing - dodge the bugs, grab the gems",
	Long: `Gem Crossing is a single-screen arcade game for your terminal.

Move across three lanes of bugs to reach the water for 100 points.
Gems on the lanes are worth 25, 50 or 100 points. Three hits and
the round is over.

Available commands:
  play     - Play the game directly
  menu     - Title screen with play and high scores
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games

Examples:
  crossing play
  crossing play --difficulty hard
  crossing desktop
  crossing serve --ssh :2222
  crossing scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}
