package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
)

// Canvas layout in world pixels. Tiles are drawn 50px below their grid
// origin; sprites are 101x171 with their visible part in the lower half.
const (
	canvasWidth   = 505
	canvasHeight  = 606
	tileTop       = 50
	spriteWidth   = 101
	spriteHeight  = 171
	hudTextMargin = 8
)

var (
	waterColor = color.RGBA{R: 64, G: 140, B: 230, A: 255}
	stoneColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	grassColor = color.RGBA{R: 90, G: 180, B: 80, A: 255}
	gridColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	shadeColor = color.RGBA{A: 160}
)

var spriteColors = map[crossing.Sprite]color.RGBA{
	crossing.SpritePlayer:     {R: 245, G: 245, B: 245, A: 255},
	crossing.SpriteDefeated:   {R: 110, G: 100, B: 90, A: 255},
	crossing.SpriteEnemy:      {R: 220, G: 40, B: 40, A: 255},
	crossing.SpriteHeart:      {R: 230, G: 30, B: 70, A: 255},
	crossing.SpriteGemBlue:    {R: 40, G: 90, B: 250, A: 255},
	crossing.SpriteGemGreen:   {R: 30, G: 200, B: 90, A: 255},
	crossing.SpriteGemOrange:  {R: 250, G: 150, B: 30, A: 255},
	crossing.SpriteGemUnknown: {R: 200, G: 60, B: 200, A: 255},
}

// imageSink draws sprites as filled shapes onto an ebiten image.
type imageSink struct {
	dst   *ebiten.Image
	score int
	lives int
	high  int
}

// DrawSprite implements crossing.Sink.
func (s *imageSink) DrawSprite(sp crossing.Sprite, x, y, w, h float64) {
	if w == 0 || h == 0 {
		w, h = spriteWidth, spriteHeight
	}
	c, ok := spriteColors[sp]
	if !ok {
		return
	}

	bx, by, bw, bh := spriteBody(x, y, w, h)
	vector.DrawFilledRect(s.dst, bx, by, bw, bh, c, true)
	vector.StrokeRect(s.dst, bx, by, bw, bh, 1, gridColor, true)
}

// SetText implements crossing.Sink.
func (s *imageSink) SetText(field crossing.HUDField, value int) {
	switch field {
	case crossing.HUDScore:
		s.score = value
	case crossing.HUDLives:
		s.lives = value
	case crossing.HUDHighScore:
		s.high = value
	}
}

// spriteBody returns the visible part of a sprite box: the sprite sheets
// leave the top 40% and the outer 15% on each side transparent.
func spriteBody(x, y, w, h float64) (bx, by, bw, bh float32) {
	return float32(x + w*0.15), float32(y + h*0.4), float32(w * 0.7), float32(h * 0.45)
}

// drawTerrain paints the board rows: water, stone lanes, then grass.
func drawTerrain(dst *ebiten.Image, grid crossing.Grid, lanes int) {
	for row := 0; row < grid.Rows; row++ {
		c := grassColor
		switch {
		case row == 0:
			c = waterColor
		case row <= lanes:
			c = stoneColor
		}
		for col := 0; col < grid.Cols; col++ {
			x := float32(float64(col) * grid.TileWidth)
			y := float32(float64(row)*grid.TileHeight + tileTop)
			vector.DrawFilledRect(dst, x, y, float32(grid.TileWidth), float32(grid.TileHeight), c, false)
			vector.StrokeRect(dst, x, y, float32(grid.TileWidth), float32(grid.TileHeight), 1, gridColor, false)
		}
	}
}

// drawHUD prints the score line below the board.
func (s *imageSink) drawHUD() {
	line := fmt.Sprintf("Score: %d   Lives: %d   Best: %d", s.score, s.lives, s.high)
	ebitenutil.DebugPrintAt(s.dst, line, hudTextMargin, canvasHeight-20)
}

// drawOverlay shades the board and prints a message in the middle.
func drawOverlay(dst *ebiten.Image, lines ...string) {
	vector.DrawFilledRect(dst, 0, canvasHeight/2-40, canvasWidth, 80, shadeColor, false)
	for i, line := range lines {
		// The debug font is 6px wide.
		x := (canvasWidth - len(line)*6) / 2
		ebitenutil.DebugPrintAt(dst, line, x, canvasHeight/2-20+i*20)
	}
}
