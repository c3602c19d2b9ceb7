package crossing

import (
	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

// GemType is a collectible kind and the points it is worth.
type GemType struct {
	Name  string
	Value int
}

// Sprite returns the image for this gem kind.
func (t GemType) Sprite() Sprite {
	switch t.Name {
	case "Blue":
		return SpriteGemBlue
	case "Green":
		return SpriteGemGreen
	case "Orange":
		return SpriteGemOrange
	default:
		return SpriteGemUnknown
	}
}

const (
	gemWidth  = 65
	gemHeight = 110
)

// Gem is a stationary collectible. It is picked up only when the player
// stands on exactly the same cell.
type Gem struct {
	Index int // position within its spawn batch
	Cell  Cell
	Pos   Point
	Type  GemType
}

// NewGem creates the i-th gem of a batch at a random lane cell with a
// random type.
func NewGem(i int, rng *core.RNG, grid Grid, cfg config.CrossingGems) Gem {
	cell := Cell{
		Col: rng.Between(0, grid.Cols-1),
		Row: rng.Between(cfg.MinRow, cfg.MaxRow),
	}
	kind := cfg.Kinds[rng.Between(0, len(cfg.Kinds)-1)]
	return Gem{
		Index: i,
		Cell:  cell,
		Pos:   grid.ToPixel(cell, Point{X: cfg.Offset, Y: cfg.Offset}),
		Type:  GemType{Name: kind.Name, Value: kind.Value},
	}
}

// Touches reports whether the player stands on this gem's cell.
func (g Gem) Touches(c Cell) bool {
	return g.Cell == c
}

// Render draws the gem.
func (g Gem) Render(dst Sink) {
	dst.DrawSprite(g.Type.Sprite(), g.Pos.X, g.Pos.Y, gemWidth, gemHeight)
}
