package crossing

import (
	"math"

	"github.com/vovakirdan/gem-crossing/internal/config"
)

// Cell is a (column, row) grid position. Row 0 is the finish zone, the
// enemy lanes follow, and the bottom rows are the safe start zone.
type Cell struct {
	Col int
	Row int
}

// Point is a position in world pixels.
type Point struct {
	X float64
	Y float64
}

// Grid maps grid cells to world pixels. Each entity kind carries its own
// offset so sprites sit centered in their tile.
type Grid struct {
	Cols       int
	Rows       int
	TileWidth  float64
	TileHeight float64
}

// NewGrid builds the grid from configuration.
func NewGrid(cfg config.CrossingGrid) Grid {
	return Grid{
		Cols:       cfg.Cols,
		Rows:       cfg.Rows,
		TileWidth:  cfg.TileWidth,
		TileHeight: cfg.TileHeight,
	}
}

// ToPixel returns col*tileWidth + offset.X, row*tileHeight + offset.Y.
func (g Grid) ToPixel(c Cell, offset Point) Point {
	return Point{
		X: float64(c.Col)*g.TileWidth + offset.X,
		Y: float64(c.Row)*g.TileHeight + offset.Y,
	}
}

// Width returns the board width in pixels.
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.TileWidth
}

// Height returns the board height in pixels.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.TileHeight
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// RowAt returns the row whose band contains a sprite drawn at pixel y.
// Sprites are offset by less than half a tile, so rounding recovers the row.
func (g Grid) RowAt(y float64) int {
	return int(math.Floor((y + g.TileHeight/2) / g.TileHeight))
}

// ColAt returns the column for a grid-aligned sprite drawn at pixel x.
func (g Grid) ColAt(x float64) int {
	return int(math.Floor((x + g.TileWidth/2) / g.TileWidth))
}
