// Package crossing implements Gem Crossing: the player crosses three lanes of
// bugs to reach the water, picking up gems on the way.
package crossing

import (
	"fmt"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "crossing"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the platform's fixed-tick Game interface.
type Game struct {
	session    *Session
	runtime    core.RuntimeConfig
	highScores HighScores
	paused     bool
}

// New creates a Gem Crossing game. highScores may be nil.
func New(highScores HighScores) *Game {
	return &Game{highScores: highScores}
}

// NewWithStore creates a game whose high score is kept in store under
// GameID. store may be nil.
func NewWithStore(store registry.HighScoreStore) *Game {
	if store == nil {
		return New(nil)
	}
	return New(scoreAdapter{store: store})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gem Crossing"
}

// Reset loads configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCrossing(configPath)
	if err == nil {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
		err = cfg.Validate()
	}
	if err != nil {
		cfg = config.DefaultCrossingConfig()
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}

	g.paused = false
	g.session = NewSession(cfg, runtime.Seed, g.highScores)
}

// Step applies this tick's actions in order, then advances the world by one
// fixed step unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	for _, a := range in.Actions() {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused {
			continue
		}
		switch a {
		case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRestart:
			g.session.HandleInput(a)
		}
	}

	if !g.paused {
		g.session.Tick(g.runtime.TickSeconds())
	}

	return core.StepResult{
		State:     g.State(),
		RoundOver: g.session.TakeRoundOver(),
	}
}

// Render draws the board and overlays into the terminal screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	sink := newScreenSink(dst, g.session.Grid())
	if !sink.fits() {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", sink.minWidth(), sink.minHeight())
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	sink.drawTerrain(g.session.Lanes())
	g.session.Render(sink)
	sink.drawHUD()

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !g.session.Player().Alive():
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Space to play again", g.session.Player().Score()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	p := g.session.Player()
	return core.GameState{
		Score:     p.Score(),
		Lives:     p.Health(),
		HighScore: g.session.HighScore(),
		GameOver:  !p.Alive(),
		Paused:    g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// scoreAdapter binds a registry store to this game's ID.
type scoreAdapter struct {
	store registry.HighScoreStore
}

func (a scoreAdapter) Get() (int, bool, error) {
	return a.store.GetHighScore(GameID)
}

func (a scoreAdapter) Set(score int) error {
	return a.store.SetHighScore(GameID, score)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, "Gem Crossing", func(env registry.Env) registry.Game {
		return NewWithStore(env.HighScores)
	})
}
