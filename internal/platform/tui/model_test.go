package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// scriptedGame ends its round on a chosen tick and records the input it saw.
type scriptedGame struct {
	steps   int
	overAt  int
	score   int
	paused  bool
	inputs  [][]core.Action
	resets  int
	renders int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState    { return g.state() }

func (g *scriptedGame) Render(dst *core.Screen) {
	g.renders++
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, append([]core.Action(nil), in.Actions()...))
	return core.StepResult{State: g.state(), RoundOver: g.steps == g.overAt}
}

func (g *scriptedGame) state() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.overAt > 0 && g.steps >= g.overAt,
		Paused:   g.paused,
	}
}

func newTestModel(t *testing.T, g *scriptedGame) (GameModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m, store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func TestGameModelForwardsKeysInOrder(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)
	assert.Equal(t, 1, g.resets)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "ticking continues")

	m, _ = update(t, m, TickMsg{})

	require.Len(t, g.inputs, 2)
	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft}, g.inputs[0])
	assert.Empty(t, g.inputs[1], "input is cleared after each tick")
	assert.False(t, m.IsQuitting())
}

func TestGameModelRecordsRoundOnce(t *testing.T) {
	g := &scriptedGame{overAt: 2, score: 175}
	m, store := newTestModel(t, g)

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 175, scores[0].Score)
	assert.True(t, m.State().GameOver)
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored mid-round")

	g.paused = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestGameModelView(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	assert.Contains(t, m.View(), "scripted")
	assert.Equal(t, 1, g.renders)
}

func TestNewGameEnv(t *testing.T) {
	assert.Nil(t, NewGameEnv(nil, nil).HighScores)

	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	env := NewGameEnv(store, nil)
	require.NotNil(t, env.HighScores)
	require.NoError(t, env.HighScores.SetHighScore("crossing", 40))

	v, ok, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 40, v)
}
