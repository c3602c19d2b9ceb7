package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-crossing/internal/registry"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// loggedHighScores reports high score reads and writes to the logger.
type loggedHighScores struct {
	store  registry.HighScoreStore
	logger *log.Logger
}

var _ registry.HighScoreStore = loggedHighScores{}

func (l loggedHighScores) GetHighScore(gameID string) (int, bool, error) {
	score, ok, err := l.store.GetHighScore(gameID)
	if err != nil {
		l.logger.Warn("could not read high score", "game", gameID, "error", err)
	}
	return score, ok, err
}

func (l loggedHighScores) SetHighScore(gameID string, score int) error {
	if err := l.store.SetHighScore(gameID, score); err != nil {
		l.logger.Error("could not write high score", "game", gameID, "score", score, "error", err)
		return err
	}
	l.logger.Info("high score submitted", "game", gameID, "score", score)
	return nil
}

// NewGameEnv builds the environment games are created with.
// Without a store, high scores are kept in memory only.
func NewGameEnv(store *storage.Store, logger *log.Logger) registry.Env {
	if store == nil {
		return registry.Env{}
	}
	return registry.Env{HighScores: loggedHighScores{store: store, logger: orDiscard(logger)}}
}
