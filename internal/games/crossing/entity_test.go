package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

func TestEnemySpawnRanges(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	rng := core.NewRNG(7)

	for i := 0; i < 500; i++ {
		e := NewEnemy(rng, cfg.Enemies, cfg.Grid.TileHeight, cfg.Enemies.BaseSpeed)

		assert.Equal(t, -101.0, e.X)
		assert.Contains(t, []float64{60, 143, 226}, e.Y)
		assert.Contains(t, []float64{200, 250, 300, 350, 400}, e.Speed)
	}
}

func TestEnemyMovesUntilPastExit(t *testing.T) {
	e := Enemy{X: -101, Y: 60, Speed: 300}

	prev := e.X
	steps := 0
	for !e.Update(1, 1000) {
		require.Greater(t, e.X, prev, "enemy must move right every tick")
		prev = e.X
		steps++
		require.Less(t, steps, 100)
	}

	assert.Greater(t, e.X, 1000.0)
	x := e.X
	assert.True(t, e.Update(1, 1000))
	assert.Equal(t, x, e.X, "an exited enemy stays put")
}

func TestGemSpawnRanges(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	grid := NewGrid(cfg.Grid)
	rng := core.NewRNG(99)

	values := map[int]bool{}
	for i := 0; i < 300; i++ {
		g := NewGem(i, rng, grid, cfg.Gems)

		assert.GreaterOrEqual(t, g.Cell.Col, 0)
		assert.LessOrEqual(t, g.Cell.Col, 4)
		assert.GreaterOrEqual(t, g.Cell.Row, 1)
		assert.LessOrEqual(t, g.Cell.Row, 3)
		assert.Equal(t, float64(g.Cell.Col)*101+18, g.Pos.X)
		assert.Equal(t, float64(g.Cell.Row)*83+18, g.Pos.Y)
		values[g.Type.Value] = true
	}

	assert.Equal(t, map[int]bool{25: true, 50: true, 100: true}, values)
}

func TestGemTouchesExactCellOnly(t *testing.T) {
	g := Gem{Cell: Cell{Col: 1, Row: 2}}

	assert.True(t, g.Touches(Cell{Col: 1, Row: 2}))
	assert.False(t, g.Touches(Cell{Col: 2, Row: 2}))
	assert.False(t, g.Touches(Cell{Col: 1, Row: 3}))
}

func TestGemTypeSprite(t *testing.T) {
	assert.Equal(t, SpriteGemBlue, GemType{Name: "Blue"}.Sprite())
	assert.Equal(t, SpriteGemGreen, GemType{Name: "Green"}.Sprite())
	assert.Equal(t, SpriteGemOrange, GemType{Name: "Orange"}.Sprite())
	assert.Equal(t, SpriteGemUnknown, GemType{Name: "Ruby"}.Sprite())
}

func TestHeartsLayout(t *testing.T) {
	hs := Hearts(3)

	require.Len(t, hs, 3)
	assert.Equal(t, Heart{X: 6, Y: 40}, hs[0])
	assert.Equal(t, Heart{X: 46, Y: 40}, hs[1])
	assert.Equal(t, Heart{X: 86, Y: 40}, hs[2])
}

func TestGridRowAndColRecovery(t *testing.T) {
	grid := NewGrid(config.DefaultCrossingConfig().Grid)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			c := Cell{Col: col, Row: row}
			player := grid.ToPixel(c, Point{Y: -40})
			gem := grid.ToPixel(c, Point{X: 18, Y: 18})

			assert.Equal(t, row, grid.RowAt(player.Y))
			assert.Equal(t, col, grid.ColAt(player.X))
			assert.Equal(t, row, grid.RowAt(gem.Y))
			assert.Equal(t, col, grid.ColAt(gem.X))
		}
	}

	// Enemy lanes sit on rows 1-3.
	assert.Equal(t, 1, grid.RowAt(60))
	assert.Equal(t, 3, grid.RowAt(226))
}
