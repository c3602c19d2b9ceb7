package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
)

func TestScoreboardShowsCrossingHistory(t *testing.T) {
	store := openMemoryStore(t)
	for _, score := range []int{100, 300} {
		_, err := store.SaveScore(crossing.GameID, score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("other", 9999)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 80, 24)
	view := m.View()

	assert.Contains(t, view, "HIGH SCORES - Gem Crossing")
	assert.Contains(t, view, "2 rounds")
	assert.Contains(t, view, "#1")
	assert.Contains(t, view, "300")
	assert.NotContains(t, view, "9999")
}

func TestScoreboardEmpty(t *testing.T) {
	for name, m := range map[string]ScoreboardModel{
		"no rounds": NewScoreboardModel(openMemoryStore(t), 80, 24),
		"no store":  NewScoreboardModel(nil, 80, 24),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, m.View(), "No scores recorded yet.")
		})
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		back bool
		quit bool
	}{
		{"b goes back", runeKey('b'), true, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"q quits", runeKey('q'), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model, cmd := NewScoreboardModel(nil, 80, 24).Update(tc.key)
			m := model.(ScoreboardModel)

			assert.NotNil(t, cmd)
			assert.Equal(t, tc.back, m.IsGoingBack())
			assert.Equal(t, tc.quit, m.IsQuitting())
			assert.Empty(t, m.View())
		})
	}
}

func TestScoreboardScrolls(t *testing.T) {
	store := openMemoryStore(t)
	for _, score := range []int{10, 20, 30} {
		_, err := store.SaveScore(crossing.GameID, score)
		require.NoError(t, err)
	}

	var model tea.Model = NewScoreboardModel(store, 80, 24)
	model, _ = model.Update(keyDown)
	m := model.(ScoreboardModel)
	assert.Equal(t, 1, m.table.Cursor())

	model, _ = m.Update(keyUp)
	m = model.(ScoreboardModel)
	assert.Equal(t, 0, m.table.Cursor())
}
