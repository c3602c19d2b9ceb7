// Package desktop runs a game in a desktop window using Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// Moves fire on key release, so holding a key moves one tile.
var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
}

var backgroundColor = color.RGBA{R: 20, G: 20, B: 28, A: 255}

// Runner adapts a crossing game to ebiten.Game.
type Runner struct {
	game   *crossing.Game
	store  *storage.Store
	logger *log.Logger
	input  core.InputFrame
}

// NewRunner creates a runner for game. store may be nil.
func NewRunner(game *crossing.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	return &Runner{
		game:   game,
		store:  store,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Update advances the game by one tick.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	r.input.Clear()
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustReleased(k) {
				r.input.Set(ka.action)
				break
			}
		}
	}

	result := r.game.Step(r.input)
	if result.RoundOver {
		r.logger.Info("round over", "game", r.game.ID(), "score", result.State.Score)
		if r.store != nil {
			if _, err := r.store.SaveScore(r.game.ID(), result.State.Score); err != nil {
				r.logger.Error("could not save score", "error", err)
			}
		}
	}
	return nil
}

// Draw renders the board, the entities and the HUD.
func (r *Runner) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	session := r.game.Session()
	drawTerrain(screen, session.Grid(), session.Lanes())

	sink := &imageSink{dst: screen}
	session.Render(sink)
	sink.drawHUD()

	switch {
	case r.game.Paused():
		drawOverlay(screen, "PAUSED", "Press P to resume")
	case !session.Player().Alive():
		drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d", session.Player().Score()), "Press Space to play again")
	}
}

// Layout keeps the logical canvas fixed; ebiten scales it to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return canvasWidth, canvasHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *crossing.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	ebiten.SetWindowSize(canvasWidth, canvasHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	runner := NewRunner(game, store, cfg, logger)
	runner.logger.Debug("desktop window opened", "tps", ebiten.TPS())

	err := ebiten.RunGame(runner)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
