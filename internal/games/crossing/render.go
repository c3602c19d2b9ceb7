package crossing

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/gem-crossing/internal/core"
)

// Terminal layout: each tile is a block of characters.
const (
	tileChars = 12 // characters per column
	tileLines = 3  // lines per row
	hudLines  = 2  // HUD line plus a gap above the board
	footLines = 1
)

type glyph struct {
	text  string
	color core.Color
	snap  bool // grid-aligned sprite, centered in its tile
}

var glyphs = map[Sprite]glyph{
	SpritePlayer:     {`\o/`, core.ColorWhite, true},
	SpriteDefeated:   {"(#)", core.ColorGray, true},
	SpriteEnemy:      {"}oo>", core.ColorBrightRed, false},
	SpriteGemBlue:    {"◆", core.ColorBrightBlue, true},
	SpriteGemGreen:   {"◆", core.ColorBrightGreen, true},
	SpriteGemOrange:  {"◆", core.ColorOrange, true},
	SpriteGemUnknown: {"◇", core.ColorMagenta, true},
}

// screenSink draws world-pixel sprites into a character screen.
type screenSink struct {
	dst   *core.Screen
	grid  Grid
	ox    int // board origin in characters
	oy    int
	score int
	high  int
	heart int // hearts drawn so far
}

func newScreenSink(dst *core.Screen, grid Grid) *screenSink {
	s := &screenSink{dst: dst, grid: grid}
	s.ox = core.Max((dst.Width()-s.boardWidth())/2, 0)
	s.oy = hudLines
	return s
}

func (s *screenSink) boardWidth() int  { return s.grid.Cols * tileChars }
func (s *screenSink) boardHeight() int { return s.grid.Rows * tileLines }
func (s *screenSink) minWidth() int    { return s.boardWidth() }
func (s *screenSink) minHeight() int   { return hudLines + s.boardHeight() + footLines }

func (s *screenSink) fits() bool {
	return s.dst.Width() >= s.minWidth() && s.dst.Height() >= s.minHeight()
}

// drawTerrain paints water on row 0, stone on the enemy lanes and grass below.
func (s *screenSink) drawTerrain(lanes int) {
	for row := 0; row < s.grid.Rows; row++ {
		fill, color := '"', core.ColorGreen
		switch {
		case row == 0:
			fill, color = '~', core.ColorBlue
		case row <= lanes:
			fill, color = '·', core.ColorGray
		}
		s.dst.DrawRect(core.NewRect(s.ox, s.oy+row*tileLines, s.boardWidth(), tileLines), fill, color)
	}
}

// DrawSprite implements Sink.
func (s *screenSink) DrawSprite(sp Sprite, x, y, _, _ float64) {
	if sp == SpriteHeart {
		// Hearts live in the HUD rather than on the board.
		hx := s.ox + s.boardWidth()/2 - 3 + s.heart*2
		s.dst.SetColored(hx, 0, '♥', core.ColorRed)
		s.heart++
		return
	}

	g, ok := glyphs[sp]
	if !ok {
		return
	}

	row := s.grid.RowAt(y)
	if row < 0 || row >= s.grid.Rows {
		return
	}
	line := s.oy + row*tileLines + tileLines/2

	width := utf8.RuneCountInString(g.text)
	var left int
	if g.snap {
		left = s.ox + s.grid.ColAt(x)*tileChars + (tileChars-width)/2
	} else {
		left = s.ox + int(math.Round(x*tileChars/s.grid.TileWidth)) + (tileChars-width)/2
	}

	i := 0
	for _, r := range g.text {
		cx := left + i
		if cx >= s.ox && cx < s.ox+s.boardWidth() {
			s.dst.SetColored(cx, line, r, g.color)
		}
		i++
	}
}

// SetText implements Sink.
func (s *screenSink) SetText(field HUDField, value int) {
	switch field {
	case HUDScore:
		s.score = value
	case HUDHighScore:
		s.high = value
	}
	// Lives are shown by the heart sprites.
}

// drawHUD writes the score line and the controls footer.
func (s *screenSink) drawHUD() {
	s.dst.DrawText(s.ox, 0, fmt.Sprintf("Score: %d", s.score))

	best := fmt.Sprintf("Best: %d", s.high)
	s.dst.DrawText(s.ox+s.boardWidth()-len(best), 0, best)

	foot := "Arrows/WASD: Move  Space: Restart  P: Pause  Q: Quit"
	y := s.oy + s.boardHeight()
	s.dst.DrawTextColored(s.ox+core.Max((s.boardWidth()-len(foot))/2, 0), y, foot, core.ColorGray)
}
