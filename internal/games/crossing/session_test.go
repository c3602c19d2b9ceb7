package crossing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// memScores is an in-memory HighScores that records every write.
type memScores struct {
	value  int
	ok     bool
	err    error
	writes []int
}

func (m *memScores) Get() (int, bool, error) { return m.value, m.ok, m.err }

func (m *memScores) Set(score int) error {
	m.writes = append(m.writes, score)
	if !m.ok || score > m.value {
		m.value, m.ok = score, true
	}
	return nil
}

// interleavedScores runs beforeSet once, between a session's read of the
// high score and its write.
type interleavedScores struct {
	HighScores
	beforeSet func()
}

func (s *interleavedScores) Set(score int) error {
	if f := s.beforeSet; f != nil {
		s.beforeSet = nil
		f()
	}
	return s.HighScores.Set(score)
}

// recordingSink counts draw calls.
type recordingSink struct {
	sprites map[Sprite]int
	text    map[HUDField]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{sprites: map[Sprite]int{}, text: map[HUDField]int{}}
}

func (r *recordingSink) DrawSprite(s Sprite, _, _, _, _ float64) { r.sprites[s]++ }
func (r *recordingSink) SetText(f HUDField, v int)               { r.text[f] = v }

func newTestSession(t *testing.T, scores HighScores) *Session {
	t.Helper()
	return NewSession(config.DefaultCrossingConfig(), 42, scores)
}

func TestNewSessionStartsRound(t *testing.T) {
	s := newTestSession(t, nil)

	assert.Len(t, s.Enemies(), 1)
	assert.True(t, s.SpawnArmed())
	assert.Len(t, s.Gems(), 4)
	assert.Len(t, s.Hearts(), 3)
	assert.Equal(t, Cell{Col: 2, Row: 5}, s.Player().Cell())
	assert.Equal(t, 0, s.HighScore())
}

func TestSpawnTimerAddsEnemies(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 0; i < 4; i++ {
		s.Tick(0.25)
	}
	assert.Len(t, s.Enemies(), 2)

	s.Tick(1)
	assert.Len(t, s.Enemies(), 3)
	assert.Equal(t, 5, s.Ticks())
}

func TestResetEnemiesCancelsTimer(t *testing.T) {
	s := newTestSession(t, nil)
	s.ResetEnemies()

	assert.Empty(t, s.Enemies())
	assert.False(t, s.SpawnArmed())

	s.Tick(3)
	assert.Empty(t, s.Enemies())
}

func TestFinishRespawnsGems(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 0; i < 4; i++ {
		require.Equal(t, InputMoved, s.HandleInput(core.ActionUp))
	}
	assert.Equal(t, InputFinished, s.HandleInput(core.ActionUp))

	assert.Equal(t, 100, s.Player().Score())
	assert.Equal(t, Cell{Col: 2, Row: 5}, s.Player().Cell())
	require.Len(t, s.Gems(), 4)
	for _, g := range s.Gems() {
		assert.GreaterOrEqual(t, g.Cell.Row, 1)
		assert.LessOrEqual(t, g.Cell.Row, 3)
		assert.GreaterOrEqual(t, g.Cell.Col, 0)
		assert.LessOrEqual(t, g.Cell.Col, 4)
	}
}

func TestGemCollection(t *testing.T) {
	s := newTestSession(t, nil)
	s.gems.Clear()
	s.gems.Insert(Gem{Cell: Cell{Col: 2, Row: 4}, Type: GemType{Name: "Blue", Value: 25}})
	s.gems.Insert(Gem{Cell: Cell{Col: 1, Row: 4}, Type: GemType{Name: "Orange", Value: 100}})

	s.HandleInput(core.ActionUp)
	s.Tick(0)

	assert.Equal(t, 25, s.Player().Score())
	require.Len(t, s.Gems(), 1)
	assert.Equal(t, 100, s.Gems()[0].Type.Value)

	// Standing still does not collect twice.
	s.Tick(0)
	assert.Equal(t, 25, s.Player().Score())
}

func TestEnemyCollisionCostsLife(t *testing.T) {
	s := newTestSession(t, nil)
	pos := s.Player().Pos()
	s.enemies = []Enemy{{X: pos.X, Y: pos.Y, Speed: 0}}

	s.Tick(0)

	assert.Equal(t, 2, s.Player().Health())
	assert.Len(t, s.Hearts(), 2)
	assert.True(t, s.Player().Alive())
}

func TestFinalDeathWritesHighScoreOnce(t *testing.T) {
	scores := &memScores{}
	s := newTestSession(t, scores)
	s.Player().ScoreUp(250)

	for i := 0; i < 3; i++ {
		s.killPlayer()
	}

	assert.False(t, s.Player().Alive())
	assert.Equal(t, 0, s.Player().Health())
	assert.Empty(t, s.Hearts())
	assert.Equal(t, []int{250}, scores.writes)
	assert.Equal(t, 250, s.HighScore())
	assert.True(t, s.TakeRoundOver())
	assert.False(t, s.TakeRoundOver())

	s.killPlayer()
	assert.Equal(t, []int{250}, scores.writes, "a dead player cannot die again")
}

func TestHighScoreNotWrittenUnlessBeaten(t *testing.T) {
	scores := &memScores{value: 300, ok: true}
	s := newTestSession(t, scores)
	require.Equal(t, 300, s.HighScore())
	s.Player().ScoreUp(300)

	for i := 0; i < 3; i++ {
		s.killPlayer()
	}

	assert.Empty(t, scores.writes)
	assert.Equal(t, 300, s.HighScore())
}

func TestHighScoreSurvivesInterleavedRounds(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	shared := scoreAdapter{store: store}

	winner := newTestSession(t, shared)
	winner.Player().ScoreUp(300)

	loser := newTestSession(t, &interleavedScores{
		HighScores: shared,
		beforeSet: func() {
			for i := 0; i < 3; i++ {
				winner.killPlayer()
			}
		},
	})
	loser.Player().ScoreUp(200)
	for i := 0; i < 3; i++ {
		loser.killPlayer()
	}

	stored, ok, err := store.GetHighScore(GameID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 300, stored)
	assert.Equal(t, 300, winner.HighScore())
	assert.Equal(t, 300, loser.HighScore())
}

func TestHighScoreStoreErrorKeepsPlaying(t *testing.T) {
	scores := &memScores{err: errors.New("disk gone")}
	s := newTestSession(t, scores)
	s.Player().ScoreUp(50)

	for i := 0; i < 3; i++ {
		s.killPlayer()
	}

	assert.Equal(t, []int{50}, scores.writes)
	assert.Equal(t, 50, s.HighScore())
}

func TestDeadPlayerCollectsNothing(t *testing.T) {
	s := newTestSession(t, nil)
	for i := 0; i < 3; i++ {
		s.killPlayer()
	}
	s.gems.Clear()
	s.gems.Insert(Gem{Cell: s.Player().Cell(), Type: GemType{Name: "Green", Value: 50}})

	s.Tick(0)

	assert.Equal(t, 0, s.Player().Score())
	assert.Len(t, s.Gems(), 1)
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, nil)
	s.HandleInput(core.ActionUp)
	s.Player().ScoreUp(400)
	for i := 0; i < 8; i++ {
		s.Tick(0.5)
	}
	for i := 0; i < 3; i++ {
		s.killPlayer()
	}

	assert.Equal(t, InputRestart, s.HandleInput(core.ActionRestart))

	assert.Len(t, s.Enemies(), 1)
	assert.True(t, s.SpawnArmed())
	assert.Len(t, s.Gems(), 4)
	assert.Len(t, s.Hearts(), 3)
	assert.Equal(t, 3, s.Player().Health())
	assert.Equal(t, 0, s.Player().Score())
	assert.True(t, s.Player().Alive())
	assert.Equal(t, Cell{Col: 2, Row: 5}, s.Player().Cell())
}

func TestEvictionPolicies(t *testing.T) {
	slow := Enemy{X: 0, Y: 60, Speed: 1}
	gone := Enemy{X: 1001, Y: 143, Speed: 400}

	tests := []struct {
		name     string
		eviction string
		want     Enemy
	}{
		{"front evicts the oldest", config.EvictFront, gone},
		{"self evicts the departed", config.EvictSelf, slow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCrossingConfig()
			cfg.Enemies.Eviction = tt.eviction
			s := NewSession(cfg, 1, nil)
			s.enemies = []Enemy{slow, gone}

			s.Tick(0)

			require.Len(t, s.Enemies(), 1)
			assert.Equal(t, tt.want, s.Enemies()[0])
		})
	}
}

func TestExitAndCollideSameTick(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	cfg.Enemies.ExitX = 100
	s := NewSession(cfg, 1, nil)
	pos := s.Player().Pos()
	s.enemies = []Enemy{{X: pos.X, Y: pos.Y, Speed: 300}}

	s.Tick(0)

	assert.Equal(t, 2, s.Player().Health(), "collision is checked for a departing enemy")
	assert.Empty(t, s.Enemies())
}

func TestSessionRender(t *testing.T) {
	scores := &memScores{value: 900, ok: true}
	s := newTestSession(t, scores)
	sink := newRecordingSink()

	s.Render(sink)

	assert.Equal(t, 3, sink.sprites[SpriteHeart])
	assert.Equal(t, 1, sink.sprites[SpriteEnemy])
	assert.Equal(t, 1, sink.sprites[SpritePlayer])
	gems := sink.sprites[SpriteGemBlue] + sink.sprites[SpriteGemGreen] + sink.sprites[SpriteGemOrange]
	assert.Equal(t, 4, gems)

	assert.Equal(t, 0, sink.text[HUDScore])
	assert.Equal(t, 3, sink.text[HUDLives])
	assert.Equal(t, 900, sink.text[HUDHighScore])
}

func TestSessionDeterminism(t *testing.T) {
	a := newTestSession(t, nil)
	b := newTestSession(t, nil)

	inputs := map[int]core.Action{10: core.ActionUp, 30: core.ActionLeft, 50: core.ActionUp}
	for i := 0; i < 240; i++ {
		if act, ok := inputs[i]; ok {
			a.HandleInput(act)
			b.HandleInput(act)
		}
		a.Tick(1.0 / 60)
		b.Tick(1.0 / 60)
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
