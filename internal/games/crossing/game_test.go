package crossing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(nil)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 20, 90:
			input.Set(core.ActionUp)
		case 40:
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	assert.Equal(t, g1.Session().Snapshot(), g2.Session().Snapshot())
	assert.Equal(t, g1.State(), g2.State())
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	require.True(t, res.State.Paused)

	ticks := g.Session().Ticks()
	enemies := g.Session().Snapshot().Enemies

	in.Clear()
	in.Set(core.ActionUp)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}

	assert.Equal(t, ticks, g.Session().Ticks())
	assert.Equal(t, enemies, g.Session().Enemies())
	assert.Equal(t, Cell{Col: 2, Row: 5}, g.Session().Player().Cell(), "moves are ignored while paused")

	in.Clear()
	in.Set(core.ActionPause)
	res = g.Step(in)
	assert.False(t, res.State.Paused)
	assert.Equal(t, ticks+1, g.Session().Ticks())
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	g.Step(in)

	assert.Equal(t, Cell{Col: 1, Row: 4}, g.Session().Player().Cell())
}

func TestStepReportsRoundOver(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 3; i++ {
		g.Session().killPlayer()
	}

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.RoundOver)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Lives)

	res = g.Step(core.NewInputFrame())
	assert.False(t, res.RoundOver, "round end is reported once")

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 3, res.State.Lives)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Best: 0")
	assert.Contains(t, out, `\o/`)
	assert.Equal(t, 3, strings.Count(out, "♥"))
	assert.Contains(t, out, "~")
}

func TestRenderGameOverAndPause(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(80, 24)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(in)
	for i := 0; i < 3; i++ {
		g.Session().killPlayer()
	}
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "(#)")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(40, 10)

	g.Render(screen)

	assert.Contains(t, screen.String(), "too small")
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))

	g, err := registry.Create(GameID, registry.Env{})
	require.NoError(t, err)
	assert.Equal(t, "Gem Crossing", g.Title())
}

func TestResetFallsBackWhenPresetStallsEnemies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  speed_step: 140\n"), 0o600))
	SetConfigPath(path)
	SetDifficultyPreset("easy")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	g := newTestGame(t, 7)
	assert.Equal(t, 5, g.Session().Player().Health(), "easy preset still applies")

	idle := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		g.Step(idle)
		for _, e := range g.Session().Enemies() {
			require.Positive(t, e.Speed)
		}
	}
}
