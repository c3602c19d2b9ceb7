package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Check that the file was created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreMemory(t *testing.T) {
	store, err := Open(MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetHighScore("crossing", 10))
	v, ok, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("crossing", score)
		require.NoError(t, err)
	}
	// Different game
	_, err := store.SaveScore("other", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("crossing", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be sorted descending
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero())

	top, err := store.TopScores("crossing", 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	other, err := store.TopScores("other", 0)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 500, other[0].Score)
}

func TestStoreHighScoreAbsent(t *testing.T) {
	store := openTestStore(t)

	v, ok, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	best, err := store.HighScore("crossing")
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestStoreSetHighScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		set  int
		want int
	}{
		{set: 300, want: 300},
		{set: 450, want: 450},
		{set: 200, want: 450},
		{set: 450, want: 450},
	}

	for _, tt := range tests {
		require.NoError(t, store.SetHighScore("crossing", tt.set))
		v, ok, err := store.GetHighScore("crossing")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, tt.want, v, "after setting %d", tt.set)
	}

	// Keyed per game.
	_, ok, err := store.GetHighScore("other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreHighScoreInterleavedRounds(t *testing.T) {
	store := openTestStore(t)

	// Both rounds read the empty store before either writes.
	_, okA, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	_, okB, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	require.False(t, okA)
	require.False(t, okB)

	require.NoError(t, store.SetHighScore("crossing", 300))
	require.NoError(t, store.SetHighScore("crossing", 200))

	v, _, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	assert.Equal(t, 300, v)
}

func TestStoreHighScoreFallsBackToHistory(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("crossing", 125)
	require.NoError(t, err)

	best, err := store.HighScore("crossing")
	require.NoError(t, err)
	assert.Equal(t, 125, best)

	require.NoError(t, store.SetHighScore("crossing", 900))
	best, err = store.HighScore("crossing")
	require.NoError(t, err)
	assert.Equal(t, 900, best)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("crossing", 100)
	require.NoError(t, err)
	require.NoError(t, store.SetHighScore("crossing", 100))
	_, err = store.SaveScore("other", 10)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("crossing"))

	scores, err := store.TopScores("crossing", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	_, ok, err := store.GetHighScore("crossing")
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("crossing")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, score := range []int{100, 300} {
		_, err := store.SaveScore("crossing", score)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("crossing")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())

	require.NoError(t, store.SetHighScore("crossing", 1000))
	stats, err = store.GetGameStats("crossing")
	require.NoError(t, err)
	assert.Equal(t, 1000, stats.HighScore)
}
